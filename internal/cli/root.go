// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/minerdetect/minerscan/internal/config"
	"github.com/minerdetect/minerscan/internal/core"
	"github.com/minerdetect/minerscan/internal/util"
	"github.com/minerdetect/minerscan/pkg/geo"
	"github.com/minerdetect/minerscan/pkg/network"
	"github.com/minerdetect/minerscan/pkg/scan"
	"github.com/minerdetect/minerscan/pkg/store"
	"github.com/minerdetect/minerscan/pkg/target"
)

// Root builds the minerscan command. userNet supplies the fallback target
// when the caller selects none.
func Root(runner core.Runner, userNet network.Network) (*cobra.Command, error) {
	var printJson bool
	var noProgress bool
	var noPing bool
	var grabBanners bool
	var miningOnly bool
	var enrich bool
	var ports string
	var timeoutSeconds int
	var concurrency int
	var targetRange string
	var targetCidr string
	var targetISP string
	var targetRegion string
	var dbPath string
	var redisAddr string
	var outFile string
	var configPath string
	var ifaceName string

	cmd := &cobra.Command{
		Use:   "minerscan",
		Short: "Find cryptocurrency miners on a network",
		Long:  `CLI to probe address ranges for hosts exposing mining services`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := scan.Config{Ping: true}

			if configPath != "" {
				f, err := config.Load(configPath)

				if err != nil {
					return err
				}

				cfg = f.Apply(cfg)

				if !cmd.Flags().Changed("ports") && f.Ports != "" {
					ports = f.Ports
				}

				if !cmd.Flags().Changed("db") && f.DBPath != "" {
					dbPath = f.DBPath
				}

				if !cmd.Flags().Changed("redis") && f.RedisAddr != "" {
					redisAddr = f.RedisAddr
				}

				if !cmd.Flags().Changed("out-file") && f.OutFile != "" {
					outFile = f.OutFile
				}
			}

			if ifaceName != userNet.Interface().Name {
				iface, err := network.NewNetworkFromInterfaceName(ifaceName)

				if err != nil {
					return err
				}

				userNet = iface
			}

			if targetRange != "" {
				cfg.Targets = target.Spec{Range: targetRange}
			} else if targetCidr != "" {
				cfg.Targets = target.Spec{CIDR: targetCidr}
			} else if targetISP != "" {
				cfg.Targets = target.Spec{ISP: targetISP}
			} else if targetRegion != "" {
				cfg.Targets = target.Spec{Region: targetRegion}
			}

			if cfg.Targets == (target.Spec{}) {
				cfg.Targets = target.Spec{CIDR: userNet.Cidr()}
			}

			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = time.Duration(timeoutSeconds) * time.Second
			}

			if cmd.Flags().Changed("concurrency") {
				cfg.MaxConcurrent = concurrency
			}

			if noPing {
				cfg.Ping = false
			}

			if grabBanners {
				cfg.GrabBanners = true
			}

			if enrich {
				cfg.Enrich = true
			}

			// no port selection means the known mining-service ports
			if miningOnly || ports == "" {
				cfg.MiningPortsOnly = true
			} else {
				portList, err := util.ParsePorts(ports)

				if err != nil {
					return err
				}

				cfg.Ports = portList
			}

			options := []scan.Option{}

			if dbPath != "" {
				sink, err := store.New(dbPath)

				if err != nil {
					return err
				}

				defer sink.Close()

				options = append(options, scan.WithSink(sink))
			}

			if cfg.Enrich {
				if redisAddr != "" {
					options = append(options, scan.WithGeoCache(geo.NewRedisCache(redisAddr)))
				} else {
					options = append(options, scan.WithGeoCache(geo.NewMemoryCache()))
				}
			}

			runner.Initialize(
				scan.New(cfg, options...),
				0,
				noProgress,
				printJson,
				outFile,
			)

			_, err := runner.Run(cmd.Context())

			return err
		},
	}

	cmd.Flags().BoolVar(&printJson, "json", false, "output json instead of table text")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable all output except for final results")
	cmd.Flags().BoolVar(&noPing, "no-ping", false, "skip the liveness check and probe every target")
	cmd.Flags().BoolVar(&grabBanners, "banners", false, "read service banners from suspected miners")
	cmd.Flags().BoolVar(&miningOnly, "mining-only", false, "restrict probing to known mining-service ports")
	cmd.Flags().BoolVar(&enrich, "enrich", false, "annotate results with ISP and region info")
	cmd.Flags().StringVarP(&ports, "ports", "p", "", "target ports, e.g. 22,8332-8333 (defaults to mining-service ports)")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 3, "per-connection timeout in seconds")
	cmd.Flags().IntVar(&concurrency, "concurrency", 50, "maximum hosts scanned at once")
	cmd.Flags().StringVarP(&targetRange, "range", "r", "", "target an explicit range, e.g. 10.0.0.1-10.0.0.50")
	cmd.Flags().StringVarP(&targetCidr, "cidr", "c", "", "target a cidr block, e.g. 10.0.0.0/24")
	cmd.Flags().StringVar(&targetISP, "isp", "", "target an ISP's announced blocks by name")
	cmd.Flags().StringVar(&targetRegion, "region", "", "target a region by name")
	cmd.Flags().StringVar(&dbPath, "db", "", "persist runs and results to this database file")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the ISP/region cache")
	cmd.Flags().StringVar(&outFile, "out-file", "", "write the final report to this file")
	cmd.Flags().StringVar(&configPath, "config", "", "load scan configuration from a yaml file")
	cmd.Flags().StringVarP(&ifaceName, "interface", "i", userNet.Interface().Name, "set the interface for local-network scanning")

	cmd.AddCommand(newVersion())

	return cmd, nil
}
