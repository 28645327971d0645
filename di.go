package skikt

import (
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/0xalexb/skikt/deployment"
	"github.com/0xalexb/skikt/merge"
)

// BaseLoader supplies the base configuration to the Fx module. It is the
// external collaborator that owns reading the persisted base document.
type BaseLoader func() (deployment.SystemConfig, error)

// NewModule creates an Fx module that resolves the deployment
// configuration once and provides the resolved deployment.SystemConfig and
// the []merge.ChangeRecord change log to the graph. A BaseLoader must be
// provided elsewhere in the graph; a *slog.Logger is used when present.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module("skikt",
		fx.Provide(
			fx.Annotate(
				func(loadBase BaseLoader, logger *slog.Logger) (deployment.SystemConfig, []merge.ChangeRecord, error) {
					base, err := loadBase()
					if err != nil {
						return deployment.SystemConfig{}, nil, fmt.Errorf("loading base configuration: %w", err)
					}

					resolveOpts := opts
					if logger != nil {
						resolveOpts = append([]Option{WithLogger(logger)}, opts...)
					}

					result, err := Resolve(base, resolveOpts...)
					if err != nil {
						return deployment.SystemConfig{}, nil, err
					}

					return result.Config, result.Changes, nil
				},
				fx.ParamTags("", `optional:"true"`),
			),
		),
	)
}
