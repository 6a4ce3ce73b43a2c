package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"car-rentals-api/cmd"
)

func main() {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:   "car-rentals-api",
		Short: "Car rental offer search with live and synthetic sources",
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "data/car_rentals.db", "path to the sqlite database")

	var port int
	var debug bool
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Run the HTTP API server",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.ApiServer(dbPath, port, debug)
		},
	}
	serverCmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	serverCmd.Flags().BoolVar(&debug, "debug", false, "expose pprof endpoints")
	rootCmd.AddCommand(serverCmd)

	var params cmd.SearchParams
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Run a single search and print the result as JSON",
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Search(dbPath, params)
		},
	}
	searchCmd.Flags().StringVar(&params.From, "from", "", "pickup location, \"City, State\"")
	searchCmd.Flags().StringVar(&params.To, "to", "", "drop-off location, \"City, State\"")
	searchCmd.Flags().StringVar(&params.Pickup, "pickup", "", "pickup date, YYYY-MM-DD (default tomorrow)")
	searchCmd.Flags().StringVar(&params.Dropoff, "dropoff", "", "drop-off date, YYYY-MM-DD (default pickup+3d)")
	searchCmd.Flags().BoolVar(&params.RoundTrip, "round-trip", false, "return the car to the pickup location")
	searchCmd.Flags().StringVar(&params.CarSize, "car-size", "Any", "car size filter")
	_ = searchCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(searchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
