// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tracker agent runtime.
//
// It wires the sampling pipeline, local store, remote sync engine and
// background synchronization into a single process lifecycle.
package client
