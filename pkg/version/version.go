// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the docweave release version.
const Version = "0.1.0"
