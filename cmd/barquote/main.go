// barquote - event-bartending quote engine
//
// Usage:
//   barquote estimate --booking booking.json [--refdata dir] [--format table]
//   barquote serve [--port 8080] [--refdata dir] [--amqp-host localhost]
//   barquote refdata validate --refdata dir
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"bartending-quote/api"
	"bartending-quote/notify"
	"bartending-quote/pkg/geo"
	"bartending-quote/quote"
	"bartending-quote/quote/booking"
	"bartending-quote/refdata"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "barquote",
		Usage:   "Event-bartending quote engine: cost breakdowns and supplier shopping lists",
		Version: version,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "refdata",
				Usage:   "Directory of reference-data JSON files (built-in tables when empty)",
				EnvVars: []string{"BARQUOTE_REFDATA"},
			},
		},

		Commands: []*cli.Command{
			estimateCommand(),
			serveCommand(),
			refdataCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadTables(c *cli.Context) (*refdata.Tables, error) {
	dir := c.String("refdata")
	if dir == "" {
		return refdata.Default(), nil
	}
	tables, err := refdata.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	return tables, nil
}

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Compute a quote for one booking submission",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "booking",
				Aliases:  []string{"b"},
				Usage:    "Path to the booking JSON (use '-' for stdin)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json, html)",
			},
			&cli.Float64Flag{
				Name:  "lat",
				Usage: "Event latitude; with --lng, overrides travel_km via great-circle distance",
			},
			&cli.Float64Flag{
				Name:  "lng",
				Usage: "Event longitude",
			},
			&cli.BoolFlag{
				Name:  "no-catalog",
				Usage: "Skip product costing even when a catalog is available",
			},
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	tables, err := loadTables(c)
	if err != nil {
		return err
	}
	if c.Bool("no-catalog") {
		tables.Catalog = nil
	}

	var data []byte
	if path := c.String("booking"); path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read booking: %w", err)
	}

	var req booking.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse booking: %w", err)
	}

	if c.IsSet("lat") && c.IsSet("lng") {
		req.TravelKm = geo.TravelKm(geo.Point{Lat: c.Float64("lat"), Lng: c.Float64("lng")})
	}

	result := quote.NewEngine().Compute(req, tables)

	switch c.String("format") {
	case "json":
		fmt.Println(result.AuditJSON())
		return nil
	case "html":
		fmt.Println(result.CostTableHTML())
		fmt.Println(result.ShoppingListHTML())
		fmt.Println(result.SupplierOrdersHTML())
		return nil
	default:
		return outputTable(result)
	}
}

func outputTable(r *quote.Result) error {
	fmt.Println()
	fmt.Println("COST BREAKDOWN")
	fmt.Println(strings.Repeat("-", 46))
	fmt.Printf("  %-28s %d\n", "Bartenders", r.Costs.BartenderCount)
	fmt.Printf("  %-28s %.1f\n", "Labor hours", r.Costs.TotalLaborHours)
	fmt.Printf("  %-28s $%s\n", "Labor", r.Costs.LaborCost.StringFixed(2))
	fmt.Printf("  %-28s $%s\n", "Prep", r.Costs.PrepCost.StringFixed(2))
	fmt.Printf("  %-28s $%s\n", "Booking fee", r.Costs.BookingFee.StringFixed(2))
	fmt.Printf("  %-28s $%s\n", "Insurance fee", r.Costs.InsuranceFee.StringFixed(2))
	fmt.Printf("  %-28s $%s\n", "Travel fee", r.Costs.TravelFee.StringFixed(2))
	fmt.Printf("  %-28s $%s\n", "Subtotal (no product)", r.Costs.NonProductSubtotal.StringFixed(2))
	if !r.Costs.ProductTotal.IsZero() {
		fmt.Printf("  %-28s $%s\n", "Product (alcohol)", r.Costs.ProductAlcoholPreTax.StringFixed(2))
		fmt.Printf("  %-28s $%s\n", "Product (non-alcohol)", r.Costs.ProductNonAlcoholPreTax.StringFixed(2))
		fmt.Printf("  %-28s $%s\n", "Tax", r.Costs.Tax.StringFixed(2))
	}
	fmt.Printf("  %-28s $%s\n", "GRAND TOTAL", r.Costs.GrandTotal.StringFixed(2))

	if len(r.ShoppingList) > 0 {
		fmt.Println()
		fmt.Println("SHOPPING LIST")
		fmt.Println(strings.Repeat("-", 46))
		for _, e := range r.ShoppingList {
			fmt.Printf("  %-28s %5d %s\n", e.Item, e.Quantity, e.Unit)
		}
	}

	if len(r.SupplierOrders) > 0 {
		fmt.Println()
		fmt.Println("ORDERS BY SUPPLIER")
		fmt.Println(strings.Repeat("-", 46))
		for _, o := range r.SupplierOrders {
			fmt.Printf("  %-18s %-22s %5d %s\n", o.Supplier, o.Item, o.Quantity, o.Unit)
		}
	}

	for _, w := range r.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the quote intake API server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "API server port",
				EnvVars: []string{"BARQUOTE_PORT"},
			},
			&cli.StringFlag{
				Name:    "cors-origins",
				Value:   "*",
				Usage:   "Comma-separated list of allowed CORS origins",
				EnvVars: []string{"BARQUOTE_CORS_ORIGINS"},
			},
			&cli.StringFlag{
				Name:    "template-id",
				Value:   "quote_v2",
				Usage:   "Outbound email template id",
				EnvVars: []string{"BARQUOTE_TEMPLATE_ID"},
			},
			&cli.BoolFlag{
				Name:  "with-email",
				Usage: "Queue outbound emails on RabbitMQ",
			},
			&cli.StringFlag{
				Name:    "amqp-host",
				Value:   "localhost",
				Usage:   "RabbitMQ host",
				EnvVars: []string{"RABBITMQ_HOST"},
			},
			&cli.IntFlag{
				Name:    "amqp-port",
				Value:   5672,
				Usage:   "RabbitMQ port",
				EnvVars: []string{"RABBITMQ_PORT"},
			},
			&cli.StringFlag{
				Name:    "amqp-user",
				Value:   "guest",
				Usage:   "RabbitMQ user",
				EnvVars: []string{"RABBITMQ_USER"},
			},
			&cli.StringFlag{
				Name:    "amqp-password",
				Value:   "guest",
				Usage:   "RabbitMQ password",
				EnvVars: []string{"RABBITMQ_PASSWORD"},
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	tables, err := loadTables(c)
	if err != nil {
		return err
	}

	var sender notify.Sender
	if c.Bool("with-email") {
		publisher, err := notify.DialAMQP(
			c.String("amqp-host"),
			c.Int("amqp-port"),
			c.String("amqp-user"),
			c.String("amqp-password"),
		)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer publisher.Close()
		sender = publisher
	}

	corsOrigins := strings.Split(c.String("cors-origins"), ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}

	config := api.DefaultConfig()
	config.Port = c.Int("port")
	config.CORSOrigins = corsOrigins
	config.TemplateID = c.String("template-id")

	server := api.NewServer(tables, sender, config)
	return server.StartWithGracefulShutdown()
}

// =============================================================================
// REFDATA COMMAND
// =============================================================================

func refdataCommand() *cli.Command {
	return &cli.Command{
		Name:  "refdata",
		Usage: "Manage reference data",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "Load and validate a reference-data directory",
				Action: func(c *cli.Context) error {
					dir := c.String("refdata")
					if dir == "" {
						return fmt.Errorf("--refdata directory required")
					}
					tables, err := refdata.Load(dir)
					if err != nil {
						return err
					}
					fmt.Printf("OK: %d presets, %d recipes, %d supplier categories",
						len(tables.Consumption.Presets),
						len(tables.Recipes),
						len(tables.Suppliers.Categories),
					)
					if tables.Catalog != nil {
						fmt.Printf(", catalog with %d prices", len(tables.Catalog.Prices))
					}
					fmt.Println()
					return nil
				},
			},
		},
	}
}
