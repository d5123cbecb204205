package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/entity"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/mapper"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/repository"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/service"
	"github.com/vibast-solutions/ms-go-cloud-plans/app/types"
	"github.com/vibast-solutions/ms-go-cloud-plans/config"
)

var previewRegion string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the effective plan catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the catalog and report whether it is valid",
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, err := loadCatalogForCommand()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d regions, %d plans, %d benefits (default region %s)\n",
			len(catalog.Regions), len(catalog.Plans), len(catalog.Benefits), catalog.DefaultRegion)
		return nil
	},
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective catalog as a catalog file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, err := loadCatalogForCommand()
		if err != nil {
			return err
		}
		out, err := repository.MarshalCatalogYAML(catalog)
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var catalogPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the plans response the HTTP API would return",
	RunE: func(cmd *cobra.Command, _ []string) error {
		catalog, err := loadCatalogForCommand()
		if err != nil {
			return err
		}
		return writePlansPreview(cmd.OutOrStdout(), catalog, types.NewListPlansRequest(previewRegion))
	},
}

func init() {
	catalogPreviewCmd.Flags().StringVar(&previewRegion, "region", "", "region code to preview; omit for all regions")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogDumpCmd)
	catalogCmd.AddCommand(catalogPreviewCmd)
	rootCmd.AddCommand(catalogCmd)
}

func loadCatalogForCommand() (*entity.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	catalog, err := repository.NewCatalogRepository(cfg.Cloud).Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

func writePlansPreview(w io.Writer, catalog *entity.Catalog, req *types.ListPlansRequest) error {
	result, err := service.NewCatalogService(catalog, nil).ListPlans(context.Background(), req)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(mapper.PlansResultToResponse(result))
}
