// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command trueskill is a small demo driver over the trueskill package: it
// loads a named Environment preset, rates a two-team match keyed by
// uuid.UUID player IDs, and logs the pre-match quality and the posterior
// ratings as structured JSON.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/corwinmath/trueskill"
	"github.com/corwinmath/trueskill/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to environments.yaml (built-in presets if empty)")
	preset := flag.String("preset", "", "preset name to use (config's default if empty)")
	drawn := flag.Bool("drawn", false, "rate the demo match as a draw instead of team A winning")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	env, err := cfg.Environment(*preset)
	if err != nil {
		logger.Error("failed to resolve environment preset", "error", err)
		os.Exit(1)
	}
	logger.Info("environment loaded",
		"mu", env.Mu, "sigma", env.Sigma, "beta", env.Beta,
		"tau", env.Tau, "draw_probability", env.DrawProbability)

	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	teamA := trueskill.KeyedTeam[uuid.UUID]{alice: mustRating(env, nil)}
	teamB := trueskill.KeyedTeam[uuid.UUID]{bob: mustRating(env, nil), carol: mustRating(env, nil)}

	ranks := []int{0, 1}
	if *drawn {
		ranks = []int{0, 0}
	}

	q, err := env.Quality([]trueskill.Team{{teamA[alice]}, {teamB[bob], teamB[carol]}}, nil)
	if err != nil {
		logger.Error("failed to compute match quality", "error", err)
		os.Exit(1)
	}
	logger.Info("pre-match quality", "quality", q)

	rated, err := trueskill.RateKeyed(env, []trueskill.KeyedTeam[uuid.UUID]{teamA, teamB}, ranks, nil, 0)
	if err != nil {
		logger.Error("failed to rate match", "error", err)
		os.Exit(1)
	}

	for i, team := range rated {
		for id, r := range team {
			logger.Info("posterior rating",
				"team", i, "player", id.String(),
				"mu", r.Mu, "sigma", r.Sigma, "exposure", env.Expose(r))
		}
	}
}

func mustRating(env trueskill.Environment, mu *float64) trueskill.Rating {
	r, err := env.CreateRating(mu, nil)
	if err != nil {
		panic(err)
	}
	return r
}
