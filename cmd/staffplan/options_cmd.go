package main

import (
	"github.com/spf13/cobra"

	"github.com/tum-aet/staffplan/modules/staffplan/presentation/mappers"
)

func newOptionsCmd(g *globalOptions) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the distinct relevance types, organization units and tariff groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(g, func(s *session) error {
				res, err := s.loadRecords(input)
				if err != nil {
					return err
				}
				svc := s.newService()
				svc.SetRecords(res.Records)
				return writeJSONLine(cmd.OutOrStdout(), mappers.OptionsToViewModel(svc.Options()))
			})
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Position export (.csv, .tsv, .txt, .xlsx, .xls, .json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
