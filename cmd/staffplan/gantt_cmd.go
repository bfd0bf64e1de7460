package main

import (
	"github.com/spf13/cobra"

	"github.com/tum-aet/staffplan/modules/staffplan/presentation/mappers"
)

func newGanttCmd(g *globalOptions) *cobra.Command {
	var f viewFlags
	var withSlices bool

	cmd := &cobra.Command{
		Use:   "gantt",
		Short: "Render the occupancy chart of every position as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(g, func(s *session) error {
				svc, err := f.loadService(cmd, s)
				if err != nil {
					return err
				}
				v := svc.View()
				return writeJSONLine(cmd.OutOrStdout(), mappers.GanttToViewModel(&v, s.loc, withSlices))
			})
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&withSlices, "slices", false, "Include the raw time slices of each row")
	return cmd
}
