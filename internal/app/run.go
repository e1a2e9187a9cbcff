package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/almanac/internal/almanac"
	"github.com/specialistvlad/almanac/internal/config"
	"github.com/specialistvlad/almanac/internal/ctxlog"
	"github.com/specialistvlad/almanac/internal/loader"
	"github.com/specialistvlad/almanac/internal/publish"
)

// Run loads the almanac, answers every configured query and then publishes
// and serves the answers as configured. In serve mode it blocks until ctx is
// done.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	def, err := a.loader.Load(ctx, a.config.AlmanacPaths...)
	if err != nil {
		return fmt.Errorf("failed to load almanac: %w", err)
	}
	if a.config.Export != "" {
		return a.export(def)
	}

	model, err := almanac.FromDefinition(def,
		almanac.WithWorkers(a.config.Workers),
		almanac.WithRecorder(a.metrics),
	)
	if err != nil {
		return fmt.Errorf("failed to build almanac: %w", err)
	}
	a.logger.Info("Seed-to-location path resolved.", "path", model.Path().String(), "stages", model.Path().Len())

	if a.config.HealthcheckPort > 0 {
		if err := a.startServer(ctx, model); err != nil {
			return err
		}
		defer a.closeServer()
	}

	results := make([]publish.Result, 0, len(a.config.Modes))
	for _, mode := range a.config.Modes {
		location, err := a.answer(ctx, model, mode)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "lowest location (%s): %d\n", mode, location)
		results = append(results, publish.Result{RunID: a.runID, Mode: string(mode), Location: location})
	}

	if a.config.PublishURL != "" {
		if err := a.publish(ctx, results); err != nil {
			return err
		}
	}

	if a.config.Serve {
		a.logger.Info("🌐 Serving queries until interrupted.")
		<-ctx.Done()
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) answer(ctx context.Context, model *almanac.Model, mode almanac.Mode) (uint64, error) {
	start := time.Now()
	location, err := model.Lowest(ctx, mode)
	a.metrics.ObserveQuery(string(mode), time.Since(start).Seconds(), err)
	if err != nil {
		return 0, fmt.Errorf("%s query failed: %w", mode, err)
	}
	a.logger.Info("Query answered.", "mode", mode, "location", location, "elapsed", time.Since(start))
	return location, nil
}

func (a *App) publish(ctx context.Context, results []publish.Result) error {
	p, err := publish.New(publish.Options{
		URL:   a.config.PublishURL,
		Event: a.config.PublishEvent,
	})
	if err != nil {
		return fmt.Errorf("failed to configure publisher: %w", err)
	}
	if err := p.Publish(ctx, results...); err != nil {
		return fmt.Errorf("failed to publish results: %w", err)
	}
	a.logger.Info("Results published.", "url", a.config.PublishURL, "event", a.config.PublishEvent, "count", len(results))
	return nil
}

func (a *App) export(def *config.Definition) error {
	out, err := loader.Encode(loader.Format(a.config.Export), def)
	if err != nil {
		return fmt.Errorf("failed to export almanac: %w", err)
	}
	if _, err := a.outW.Write(out); err != nil {
		return fmt.Errorf("failed to export almanac: %w", err)
	}
	a.logger.Info("Almanac exported.", "format", a.config.Export, "stages", len(def.Stages))
	return nil
}
