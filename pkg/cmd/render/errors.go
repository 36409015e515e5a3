// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
	"fmt"

	"github.com/docweave/docweave/pkg/inherit"
	"github.com/docweave/docweave/pkg/spell"
	"github.com/docweave/docweave/pkg/templatestore"
)

// describeResolveErr decorates a missing-template error with a spelling
// suggestion drawn from the ids actually present in the store.
func describeResolveErr(err error, store *templatestore.Manager) error {
	var missing inherit.MissingTemplateError
	if !errors.As(err, &missing) {
		return err
	}

	var ids []string
	for _, tpl := range store.All() {
		ids = append(ids, tpl.ID)
	}

	if suggestion, ok := spell.Nearest(missing.ID, ids); ok {
		return fmt.Errorf("%s (did you mean '%s'?)", err, suggestion)
	}
	return err
}
