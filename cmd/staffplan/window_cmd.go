package main

import (
	"github.com/spf13/cobra"

	"github.com/tum-aet/staffplan/modules/staffplan/presentation/mappers"
)

func newWindowCmd(g *globalOptions) *cobra.Command {
	var f windowFlags

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the window slider state with month and year headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(g, func(s *session) error {
				w := s.newWindow()
				set, err := f.apply(cmd, s, w)
				if err != nil {
					return err
				}
				if !set {
					w.Activate()
				}
				return writeJSONLine(cmd.OutOrStdout(), mappers.WindowToViewModel(w, s.loc))
			})
		},
	}
	f.bind(cmd)
	return cmd
}
