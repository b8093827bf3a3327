package main

import (
	"fmt"
	"os"
	"time"

	"github.com/analogj/go-util/utils"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/tribunalworks/evidence-register/pkg/register"
	"github.com/tribunalworks/evidence-register/pkg/version"
)

var goos string
var goarch string

func main() {
	app := &cli.App{
		Name:     "evidence-register",
		Usage:    "Evidence register generator for tribunals and litigation",
		Version:  version.VERSION,
		Compiled: time.Now(),
		Authors: []cli.Author{
			cli.Author{
				Name: "tribunalworks",
			},
		},
		Before: func(c *cli.Context) error {

			capsuleUrl := "tribunalworks/evidence-register"

			versionInfo := fmt.Sprintf("%s.%s-%s", goos, goarch, version.VERSION)

			subtitle := capsuleUrl + utils.LeftPad2Len(versionInfo, " ", 53-len(capsuleUrl))

			fmt.Fprintf(c.App.Writer, fmt.Sprintf(utils.StripIndent(
				`
			 ____  _  _  ____  ____  ____  _  _  ___  ____
			( ___)( \/ )(_  _)(  _ \( ___)(  \( )/ __)( ___)
			 )__)  \  /  _)(_  )(_) ))__)  )  ( ( (__  )__)
			(____)  \/  (____)(____/(____)(_)\_) \___)(____)
			%s
			`), subtitle))
			return nil
		},

		Commands: []cli.Command{
			{
				Name:  "generate",
				Usage: "Scan an evidence directory and generate the register",
				Action: func(c *cli.Context) error {
					if c.Bool("debug") {
						log.SetLevel(log.DebugLevel)
					} else {
						log.SetLevel(log.InfoLevel)
					}

					logger := log.WithFields(log.Fields{
						"type": "register",
					})

					registerProcessor, err := register.CreateRegisterProcessor(logger, register.Options{
						Directory:  c.String("directory"),
						Pattern:    c.String("pattern"),
						OutputPath: c.String("output"),
						XLSXPath:   c.String("xlsx-output"),
						RulesPath:  c.String("category-rules"),
					})
					if err != nil {
						return err
					}

					summary, err := registerProcessor.Run()
					if err != nil {
						return err
					}

					fmt.Fprintln(c.App.Writer, color.HiGreenString(
						"Register complete: %d found, %d accepted, %d skipped",
						summary.Found, summary.Accepted, summary.Skipped))
					for reason, count := range summary.Rejections {
						fmt.Fprintln(c.App.Writer, color.HiYellowString("  %s: %d", reason, count))
					}
					return nil
				},

				Flags: []cli.Flag{

					&cli.StringFlag{
						Name:  "directory",
						Usage: "Directory containing evidence documents",
						Value: ".",
					},

					&cli.StringFlag{
						Name:  "pattern",
						Usage: "Filename glob to match",
						Value: "*.pdf",
					},

					&cli.StringFlag{
						Name:  "output",
						Usage: "Output CSV file path",
						Value: "EVIDENCE_REGISTER_OUTPUT.csv",
					},

					&cli.StringFlag{
						Name:  "xlsx-output",
						Usage: "Optional XLSX rendition path",
						Value: "",
					},

					&cli.StringFlag{
						Name:  "category-rules",
						Usage: "Optional JSON file overriding the built-in category rules",
						Value: "",
					},

					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Enable debug logging",
					},
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(color.HiRedString("ERROR: %v", err))
	}
}
