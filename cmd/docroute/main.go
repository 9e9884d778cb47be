/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command docroute resolves document request paths and checks settings
// files from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/docroute"
	"dirpx.dev/docroute/apis"
	"dirpx.dev/docroute/config"
	"dirpx.dev/docroute/internal/ctxlog"
	"dirpx.dev/docroute/route"
	"dirpx.dev/docroute/utils/inflect"
	uref "dirpx.dev/docroute/utils/reflect"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "docroute",
		Short: "Resolve document request paths",
		Long: `docroute computes /{index}/{type}/{id} request paths the way the
docroute library does, using the connection settings of a YAML file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			docroute.SetLogger(logger)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug events to stderr")

	rootCmd.AddCommand(newResolveCmd(), newSettingsCmd(), newNameCmd())
	return rootCmd
}

// loadSettings reads path, or returns the defaults when path is empty.
func loadSettings(cmd *cobra.Command, path string) (*config.Settings, error) {
	if path == "" {
		return config.DefaultSettings(), nil
	}
	s, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(cmd.Context()).Debug("settings loaded", "path", path)
	return s, nil
}

type resolveOptions struct {
	settings string
	index    string
	typ      string
	goType   string
	id       string
	method   string
	strict   bool
	params   route.DocumentParameters
	fields   []string
}

func newResolveCmd() *cobra.Command {
	var o resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the request line of a single-document request",
		Long: `resolve prints "METHOD /{index}/{type}/{id}?params". Parts that are not
given are inferred from --go-type: the index and type from the indices
and type_names mappings of the settings file, then the index from
default_index (or, with infer_index_from_type, from the type name) and
the type from the identifier formatted by the settings. Parts that cannot be inferred are left out unless
--strict is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, &o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.settings, "settings", "s", "", "Settings file (YAML)")
	f.StringVarP(&o.index, "index", "i", "", "Index name")
	f.StringVarP(&o.typ, "type", "t", "", "Document type name")
	f.StringVar(&o.goType, "go-type", "", "Go type identifier to infer index and type from")
	f.StringVar(&o.id, "id", "", "Document id")
	f.StringVarP(&o.method, "method", "X", "GET", "HTTP method")
	f.BoolVar(&o.strict, "strict", false, "Fail when index, type or id is missing")
	f.StringVar(&o.params.Routing, "routing", "", "Routing value")
	f.StringVar(&o.params.Parent, "parent", "", "Parent document id")
	f.StringVar(&o.params.Preference, "preference", "", "Shard preference")
	f.StringVar(&o.params.Refresh, "refresh", "", "Refresh policy: true, false or wait_for")
	f.Int64Var(&o.params.Version, "version", 0, "Expected document version")
	f.StringVar(&o.params.VersionType, "version-type", "", "Version type")
	f.StringVar(&o.params.Timeout, "timeout", "", "Operation timeout")
	f.StringSliceVar(&o.fields, "fields", nil, "Stored fields to return")

	return cmd
}

func runResolve(cmd *cobra.Command, o *resolveOptions) error {
	s, err := loadSettings(cmd, o.settings)
	if err != nil {
		return err
	}
	docroute.SetConfig(s.Config)
	cfg := docroute.Config()

	index, typ := o.index, o.typ
	if o.goType != "" {
		// Settings mappings are keyed like --go-type and win over inference.
		key := uref.StripTypeParams(o.goType)
		if index == "" {
			index = s.Indices[key]
		}
		inferred := formatName(o.goType, cfg.TypeNameCase, cfg.PluralizeTypeNames)
		if typ == "" {
			typ = s.TypeNames[key]
		}
		if typ == "" {
			typ = inferred
		}
		if index == "" && cfg.DefaultIndex == "" && cfg.InferIndexFromType {
			index = strings.ToLower(inferred)
		}
	}
	if index == "" {
		index = cfg.DefaultIndex
	}

	params := o.params
	params.Fields = o.fields

	d := route.NewDescriptor[any]().
		Index(index).
		Type(typ).
		ID(o.id).
		Method(strings.ToUpper(o.method)).
		Params(params)

	var info *route.PathInfo
	if o.strict {
		info, err = d.ToRequiredPathInfo(docroute.Inferrer())
	} else {
		info, err = d.ToPathInfo(docroute.Inferrer())
	}
	if err != nil {
		return err
	}
	ctxlog.FromContext(cmd.Context()).Debug("resolved", "index", info.Index, "type", info.Type, "id", info.ID)
	fmt.Fprintln(cmd.OutOrStdout(), info.String())
	return nil
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect settings files",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate FILE...",
			Short: "Check settings files and print their effective values",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, path := range args {
					s, err := config.LoadFile(path)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d index, %d type, %d id mappings)\n",
						path, len(s.Indices), len(s.TypeNames), len(s.IDFields))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "defaults",
			Short: "Print the default settings as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out, err := config.Encode(config.DefaultSettings())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			},
		},
	)
	return cmd
}

func newNameCmd() *cobra.Command {
	var (
		settings string
		nameCase string
		plural   bool
	)

	cmd := &cobra.Command{
		Use:   "name IDENT...",
		Short: "Print the document type name of Go identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, settings)
			if err != nil {
				return err
			}
			nc := s.Config.TypeNameCase
			if cmd.Flags().Changed("case") {
				if nc, err = config.ParseNameCase(nameCase); err != nil {
					return fmt.Errorf("--case %q: %w", nameCase, err)
				}
			}
			if !cmd.Flags().Changed("plural") {
				plural = s.Config.PluralizeTypeNames
			}
			for _, ident := range args {
				fmt.Fprintln(cmd.OutOrStdout(), formatName(ident, nc, plural))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&settings, "settings", "s", "", "Settings file (YAML)")
	f.StringVar(&nameCase, "case", "", "Name case: camel, lower, snake or preserve")
	f.BoolVar(&plural, "plural", false, "Pluralize names")

	return cmd
}

// formatName strips a package qualifier and generic arguments before
// formatting: "blog.Page[int]" -> "page".
func formatName(ident string, nc apis.NameCase, plural bool) string {
	ident = uref.StripTypeParams(ident)
	if i := strings.LastIndexByte(ident, '.'); i >= 0 {
		ident = ident[i+1:]
	}
	return inflect.Format(ident, nc, plural)
}
