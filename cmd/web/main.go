package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"worqely/api"
	"worqely/internal/config"
	"worqely/internal/i18n"
	"worqely/internal/models"
	"worqely/internal/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "worqely",
		Short:        "WORQELY marketplace API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(envFile)
			},
		},
		&cobra.Command{
			Use:   "catalog",
			Short: "Print the merchandise catalog per tab",
			RunE: func(cmd *cobra.Command, args []string) error {
				return printCatalog(cmd)
			},
		},
		&cobra.Command{
			Use:   "translate <lang> <key>",
			Short: "Look up a translation with fallback",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				translator, err := i18n.New(i18n.DefaultLanguage)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), translator.T(args[0], args[1]))
				return nil
			},
		},
	)
	return root
}

func serve(envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	translator, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	router := api.NewRouter(api.NewServices(translator))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Run server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost%s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("✅ Server shutdown complete")
	return nil
}

func printCatalog(cmd *cobra.Command) error {
	catalog := services.NewProductService()
	catalog.InitSampleData()

	out := cmd.OutOrStdout()
	for _, tab := range []models.Category{models.CategoryTools, models.CategorySafety, models.CategoryEssentials, models.CategoryRental} {
		products, err := catalog.ListProducts(tab)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s (%d)\n", tab, len(products))
		for _, p := range products {
			line := fmt.Sprintf("  %-16s %-32s %8s", p.ID, p.Name, p.Price.StringFixed(2))
			if p.Rentable() {
				line += fmt.Sprintf("  rent %s/day", p.RentPrice.StringFixed(2))
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
