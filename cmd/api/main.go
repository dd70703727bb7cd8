// @title           Pet Health Tracker API
// @version         1.0
// @description     Registro de mascotas y actividades (ejercicio y comida) por sesión de navegador.
// @BasePath        /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pettracker",
	Short: "Pet Health Tracker: mascotas y actividades por sesión",
	// sin subcomando levanta el servidor
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
