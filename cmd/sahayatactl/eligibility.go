package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/profile"
)

func newEligibilityCmd(opts *options) *cobra.Command {
	var (
		p      profile.Profile
		age    int
		income int64
	)
	cmd := &cobra.Command{
		Use:     "eligibility",
		Aliases: []string{"eligible"},
		Short:   "List schemes a citizen profile qualifies for",
		Example: `  sahayatactl eligibility --age 65
  sahayatactl eligibility --occupation Farmer --location Rural --income 90000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("age") {
				p.Age = &age
			}
			if cmd.Flags().Changed("income") {
				p.AnnualIncome = &income
			}

			ctx := cmd.Context()
			svc, backend, err := opts.open(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = backend.Close() }()

			res, err := svc.Eligibility.Check(ctx, p)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			header(w, "%d eligible scheme(s), %s match", res.Count, res.Phase)
			for _, e := range res.Schemes {
				row(w, e.Scheme.ID, e.Scheme.EN.Name, e.Relevance, e.Scheme.BeneficiaryTags)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Gender, "gender", "", "Male, Female or Other")
	f.IntVar(&age, "age", 0, "age in years")
	f.StringVar(&p.Occupation, "occupation", "", "Farmer, Student, Unemployed, ...")
	f.StringVar(&p.Location, "location", "", "Rural or Urban")
	f.StringVar(&p.Caste, "caste", "", "SC, ST, OBC, General, ...")
	f.BoolVar(&p.Disability, "disability", false, "person with disability")
	f.BoolVar(&p.Minority, "minority", false, "minority community member")
	f.Int64Var(&income, "income", 0, "annual household income in rupees")
	return cmd
}
