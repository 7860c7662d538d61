package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func getDiagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose",
		Short: "Check the configured AWS credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider, err := newAWSProvider(cmd.Context(), viper.GetString("aws.profile"))
			if err != nil {
				return err
			}
			d, err := provider.Diagnose(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account:    %s\n", d.Account)
			fmt.Fprintf(out, "ARN:        %s\n", d.Arn)
			fmt.Fprintf(out, "Region:     %s\n", d.Region)
			fmt.Fprintf(out, "SSM access: %v\n", d.SSMAccess)
			if d.SSMError != nil {
				fmt.Fprintf(out, "SSM error:  %v\n", d.SSMError)
			}
			return nil
		},
	}
}
