// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver computes the configuration a client actually runs with.
//
// Every option is cascaded from the client's own override over the
// overrides of the groups the client belongs to down to the global value,
// using the combination rule of the option's [options.Class]. A
// [ClientConfig] or [GroupConfig] memoizes results for its own lifetime;
// create a fresh one per request.
package resolver
