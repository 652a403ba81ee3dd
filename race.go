// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package bq

// RaceEnabled is true when the race detector is active.
// No test in this package reads it; the fairness and drain-unblocking
// tests use the same fixed goroutine counts with or without the race
// detector.
const RaceEnabled = true
