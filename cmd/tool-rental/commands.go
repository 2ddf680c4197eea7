package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toolrental/tool-rental/internal/checkout"
	"github.com/toolrental/tool-rental/internal/rental"
	"github.com/toolrental/tool-rental/internal/report"
	"github.com/toolrental/tool-rental/pkg/dateutil"
	"go.uber.org/zap"
)

func checkoutCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Interactive checkout at the rental counter",
		Long:  "Prompt for tool code, rental days, discount and checkout date, then print the rental agreement",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := newBuilder()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Output.Format
			}

			session := checkout.NewSession(builder, newFormatter(), format, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
			agreement, err := session.Run()
			if err != nil {
				if isRequestError(err) {
					// Already shown to the customer by the session
					return nil
				}
				return fmt.Errorf("checkout failed: %w", err)
			}

			logger.Info("Checkout completed",
				zap.String("tool_code", agreement.Tool.Code),
				zap.String("final_charge", agreement.FinalCharge.StringFixed(2)))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: text or json (default from config)")

	return cmd
}

func agreementCmd() *cobra.Command {
	var toolCode string
	var rentalDays int
	var discountPercent int
	var dateStr string
	var format string

	cmd := &cobra.Command{
		Use:   "agreement",
		Short: "Print a rental agreement without prompting",
		Example: "  tool-rental agreement --tool LADW --days 3 --discount 10 --date 07/02/2020\n" +
			"  tool-rental agreement --tool JAKR --days 9 --date 2015-07-02 --format json",
		RunE: func(cmd *cobra.Command, args []string) error {
			checkoutDate := dateutil.Today()
			if dateStr != "" {
				var err error
				checkoutDate, err = dateutil.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid checkout date: %w", err)
				}
			}

			builder, err := newBuilder()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Output.Format
			}

			logger.Info("Building rental agreement",
				zap.String("tool_code", toolCode),
				zap.Int("rental_days", rentalDays),
				zap.Int("discount_percent", discountPercent),
				zap.Time("checkout_date", checkoutDate))

			agreement, err := builder.Build(rental.Request{
				ToolCode:        toolCode,
				RentalDays:      rentalDays,
				DiscountPercent: discountPercent,
				CheckoutDate:    checkoutDate,
			})
			if err != nil {
				return err
			}

			return newFormatter().Render(cmd.OutOrStdout(), agreement, format)
		},
	}

	cmd.Flags().StringVarP(&toolCode, "tool", "t", "", "Tool code, e.g. LADW")
	cmd.Flags().IntVarP(&rentalDays, "days", "d", 0, "Number of rental days (>= 1)")
	cmd.Flags().IntVar(&discountPercent, "discount", 0, "Discount percent (0-100)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Checkout date (MM/DD/YYYY, default today)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text or json (default from config)")
	_ = cmd.MarkFlagRequired("tool")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func toolsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools available for rent",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := cfg.Catalog()
			if err != nil {
				return fmt.Errorf("failed to build tool catalog: %w", err)
			}

			switch format {
			case report.FormatText:
				return newFormatter().WriteCatalog(cmd.OutOrStdout(), catalog.Tools())
			case report.FormatYAML:
				return report.WriteCatalogYAML(cmd.OutOrStdout(), catalog.Tools())
			default:
				return fmt.Errorf("unknown output format: %s", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", report.FormatText, "Output format: text or yaml")

	return cmd
}

func isRequestError(err error) bool {
	return errors.Is(err, rental.ErrInvalidDiscount) ||
		errors.Is(err, rental.ErrInvalidRentalPeriod) ||
		errors.Is(err, rental.ErrUnknownTool)
}
