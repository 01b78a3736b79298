// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package graph implements the factor-graph substrate and factor kinds the
// TrueSkill message-passing schedule runs over: variables hold a current
// marginal plus the last message received from each adjacent factor,
// factors compute updated outgoing messages from the variables' cavities.
//
// Variables and factors are arena-allocated into the Graph's own slices and
// referred to by index rather than by long-lived pointer or interface
// value, per the usual rule for a graph that is built fresh for one call
// and thrown away afterward: nothing here outlives its Graph.
package graph

import "github.com/corwinmath/trueskill/internal/gaussian"

// Variable holds a belief (Marginal) and, per adjacent factor, the last
// message that factor sent it. Messages is keyed by factor index; a
// missing entry is the uninformative Gaussian (Go's zero value), which is
// exactly the "no message sent yet" state the algorithm expects.
type Variable struct {
	Marginal gaussian.Gaussian
	Messages map[int]gaussian.Gaussian
}

func newVariable() Variable {
	return Variable{Messages: make(map[int]gaussian.Gaussian)}
}

// Graph owns every variable and factor for one inference run. Its shape is
// frozen once the builder finishes adding nodes; only message values
// change as the driver runs the schedule.
type Graph struct {
	Variables []Variable
	Factors   []Factor
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}

// AddVariable allocates a new variable with an uninformative marginal and
// returns its index.
func (g *Graph) AddVariable() int {
	g.Variables = append(g.Variables, newVariable())
	return len(g.Variables) - 1
}

// AddFactor appends f to the graph and returns its index.
func (g *Graph) AddFactor(f Factor) int {
	g.Factors = append(g.Factors, f)
	return len(g.Factors) - 1
}

// sendMessage updates target's marginal by replacing the message
// previously received from factorIndex with msg: marginal <-
// (marginal / old) * msg. Returns the convergence delta between the old
// and new message.
func (g *Graph) sendMessage(target, factorIndex int, msg gaussian.Gaussian) float64 {
	v := &g.Variables[target]
	old := v.Messages[factorIndex]
	delta := gaussian.Delta(old, msg)
	v.Marginal = v.Marginal.Div(old).Mul(msg)
	v.Messages[factorIndex] = msg
	return delta
}

// sendValue sets target's marginal directly to value (as opposed to
// folding in an incremental message) and records the message that implies,
// relative to target's cavity: msg = value / cavity, cavity = marginal/old.
// Used by factors — the prior and the two truncation factors — whose
// update naturally produces the whole new marginal rather than a
// message to multiply in.
func (g *Graph) sendValue(target, factorIndex int, value gaussian.Gaussian) float64 {
	v := &g.Variables[target]
	old := v.Messages[factorIndex]
	cavity := v.Marginal.Div(old)
	newMsg := value.Div(cavity)
	delta := gaussian.Delta(old, newMsg)
	v.Marginal = value
	v.Messages[factorIndex] = newMsg
	return delta
}

// cavity returns target's belief with factorIndex's contribution removed:
// the belief "absent that factor".
func (g *Graph) cavity(target, factorIndex int) gaussian.Gaussian {
	v := &g.Variables[target]
	return v.Marginal.Div(v.Messages[factorIndex])
}
