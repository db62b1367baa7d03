// SPDX-License-Identifier: MIT

// Package match runs games: Play asks every strategy for seeds and hands
// the assignment to the simulation oracle; Tally plays every pair of
// strategies head-to-head over a set of two-player games and accumulates
// wins, draws and scores. GenerateGames produces game batches from graph
// generators.
//
// Tie policy: a head-to-head match whose scores are equal is a draw for
// both sides; nobody is credited a win.
package match
