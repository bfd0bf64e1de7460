package main

import (
	"github.com/spf13/cobra"

	"github.com/tum-aet/staffplan/modules/staffplan/presentation/mappers"
)

func newWhiteSpotsCmd(g *globalOptions) *cobra.Command {
	var f viewFlags

	cmd := &cobra.Command{
		Use:   "white-spots",
		Short: "List positions with gaps or under 100% at the reference date, one JSON object per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(g, func(s *session) error {
				svc, err := f.loadService(cmd, s)
				if err != nil {
					return err
				}
				v := svc.View()
				for _, spot := range mappers.WhiteSpotsToViewModels(&v, s.loc) {
					if err := writeJSONLine(cmd.OutOrStdout(), spot); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	f.bind(cmd)
	return cmd
}
