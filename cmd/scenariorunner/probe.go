package main

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/adest/scenariorunner/scenarioconfig"
)

// runProbe prints local host diagnostics before a scenario runs, so an
// operator can sanity-check the machine they are dispatching commands
// from before it reaches the target in config.
func runProbe(config *scenarioconfig.ScenarioConfig) error {
	info, err := host.Info()
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	avg, err := load.Avg()
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}

	fmt.Printf("[probe] local host: %s (uptime %ds)\n", info.Hostname, info.Uptime)
	fmt.Printf("[probe] memory: %.1f%% used\n", vm.UsedPercent)
	fmt.Printf("[probe] load: %.2f %.2f %.2f\n", avg.Load1, avg.Load5, avg.Load15)
	fmt.Printf("[probe] target: %s\n", config.Server.Host)
	return nil
}
