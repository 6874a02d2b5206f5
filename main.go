// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/ironcore-dev/tokenint/internal/cmd/tokenint"
	"github.com/spf13/afero"
)

func main() {
	if err := tokenint.NewCommand(afero.NewOsFs()).Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running tokenint:\n%+v\n", err)
		os.Exit(1)
	}
}
