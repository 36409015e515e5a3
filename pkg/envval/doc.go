// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package envval models the values a rendering environment can hold as a closed
tagged variant: undefined, boolean, number, string, list, or mapping. The
closed set keeps truthiness and validation switches exhaustive.

Mappings preserve key order (unlike the native Go map) so that iteration and
output stay deterministic and stable.
*/
package envval
