// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos locates template constructs within their source (file and
line), so that parse and validation errors can point at the offending marker.
*/
package filepos
