package components

import (
	"tickit/internal/domain/booking"
	"tickit/internal/domain/money"
	"tickit/internal/pkg/config"
	"tickit/internal/pkg/errs"
	"tickit/internal/usecase/commands"
	"tickit/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewPriceCalculator,
		func(c *booking.DefaultPriceCalculator) booking.PriceCalculator { return c },
		// Commands
		commands.NewBookingCommands,
		commands.NewSiteCommands,
		// Queries
		queries.NewSiteQueries,
		queries.NewBookingQueries,
		queries.NewPricingQueries,
	),
)

func NewPriceCalculator(cfg config.Config) (*booking.DefaultPriceCalculator, error) {
	rates := booking.RateTable{}
	for _, f := range []struct {
		env string
		raw string
		dst *money.Money
	}{
		{"PRICE_CHILD_RATE", cfg.Pricing.ChildRate, &rates.ChildRate},
		{"PRICE_STUDENT_RATE", cfg.Pricing.StudentRate, &rates.StudentRate},
		{"PRICE_SERVICE_FEE", cfg.Pricing.ServiceFee, &rates.ServiceFee},
	} {
		m, err := money.Parse(f.raw)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid %s", f.env)
		}
		*f.dst = m
	}
	return booking.NewDefaultPriceCalculator(rates, booking.DefaultAddOnCatalog()), nil
}
