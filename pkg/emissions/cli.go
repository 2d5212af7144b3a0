package emissions

import (
	"github.com/travigo/journeyplanner/pkg/http_server"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "emissions",
		Usage: "Emissions collaborator",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the emissions service",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":5005",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					webApp := http_server.NewApp("emissions")

					service := &Service{}
					service.Router(webApp)

					return webApp.Listen(c.String("listen"))
				},
			},
		},
	}
}
