package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Pet Adoptions API
// @version 1.0
// @description API de usuarios, mascotas y adopciones.
// @BasePath /

var configPath string

var rootCmd = &cobra.Command{
	Use:   "adoptions",
	Short: "Pet adoptions API server",
	Long: `Servidor HTTP+JSON de usuarios, mascotas y adopciones.

Sin subcomando levanta el servidor (igual que "serve").`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "archivo YAML de configuración (default $CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
