package main

import (
	"context"
	"io"
	"os"

	"github.com/flexprice/marketdiscount/internal/api/dto"
	"github.com/flexprice/marketdiscount/internal/config"
	ierr "github.com/flexprice/marketdiscount/internal/errors"
	"github.com/flexprice/marketdiscount/internal/logger"
	"github.com/flexprice/marketdiscount/internal/service"
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/flexprice/marketdiscount/internal/utils"
	"github.com/flexprice/marketdiscount/internal/validator"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const flagInput = "input"

// execute runs the function binary and returns its exit code.
// The result goes to stdout, the error report and logs go to stderr.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return ierr.ExitCodeOK
	}

	if writeErr := utils.WriteJSON(stderr, ierr.NewErrorResponse(err)); writeErr != nil {
		return ierr.ExitCodeSystem
	}
	return ierr.ExitCodeFromErr(err)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "function {cart-lines|delivery-options}",
		Short:         "evaluate market discounts for a cart",
		Long:          "Reads one function input document and writes the discount operations the host should apply.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringP(flagInput, "i", "", "path of the input document, stdin when empty")

	cmd.AddCommand(
		newTargetCmd(types.FunctionTargetCartLines, "cart-lines", "generate product and order discounts"),
		newTargetCmd(types.FunctionTargetDeliveryOptions, "delivery-options", "generate shipping discounts"),
	)
	return cmd
}

func newTargetCmd(target types.FunctionTarget, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  "Runs the " + string(target) + " target.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeInput, err := openInput(cmd)
			if err != nil {
				return err
			}
			defer closeInput()

			return runTarget(cmd.Context(), target, in, cmd.OutOrStdout())
		},
	}
}

func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	path, err := cmd.Flags().GetString(flagInput)
	if err != nil {
		return nil, nil, ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ierr.WithError(err).
			WithMessagef("open input %s", path).
			WithHintf("Could not open input document %s", path).
			Mark(ierr.ErrNotFound)
	}
	return f, func() { _ = f.Close() }, nil
}

// runTarget wires the engine with fx and evaluates a single input document
func runTarget(ctx context.Context, target types.FunctionTarget, in io.Reader, out io.Writer) error {
	var runErr error
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			validator.NewValidator,
			service.NewServiceParams,
			service.NewCartLinesDiscountService,
			service.NewDeliveryOptionsDiscountService,
		),
		fx.Invoke(func(
			_ *govalidator.Validate,
			log *logger.Logger,
			cartLines service.CartLinesDiscountService,
			deliveryOptions service.DeliveryOptionsDiscountService,
		) {
			run := cartLines.GenerateRun
			if target == types.FunctionTargetDeliveryOptions {
				run = deliveryOptions.GenerateRun
			}
			runErr = evaluate(ctx, log, target, run, in, out)
		}),
	)
	if err := app.Err(); err != nil {
		return ierr.WithError(err).
			WithMessagef("initialize %s", target).
			WithHint("Function could not be initialized").
			Mark(ierr.ErrSystem)
	}
	return runErr
}

type generateRun func(ctx context.Context, input *dto.RunInput) (*dto.FunctionResult, error)

func evaluate(ctx context.Context, log *logger.Logger, target types.FunctionTarget, run generateRun, in io.Reader, out io.Writer) error {
	ctx = types.WithEvaluationID(ctx, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVALUATION))
	ctx = types.WithTarget(ctx, target)

	input, err := utils.ReadJSON[dto.RunInput](in)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	result, err := run(ctx, &input)
	if err != nil {
		log.WithContext(ctx).Errorw("function run failed", "error", err)
		return err
	}

	return utils.WriteJSON(out, result)
}
