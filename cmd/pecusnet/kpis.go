package main

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pecusnet/components/dashboard/queries"
)

type kpisCmd struct{}

func (cmd *kpisCmd) Run(ctx context.Context, root *cli) error {
	a, err := newApp(root)
	if err != nil {
		return err
	}
	defer a.close()

	report, err := queries.NewKPIQuery().Query(ctx, a.service.Profile())
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(report)
}
