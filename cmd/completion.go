/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"github.com/allbin/rtscts"
	"github.com/spf13/cobra"
)

// registerCompletions adds shell completion for the device, pin and level flags
func registerCompletions(rootCmd *cobra.Command) {
	_ = rootCmd.RegisterFlagCompletionFunc("device", completeDevices)
	_ = rootCmd.RegisterFlagCompletionFunc("pin", cobra.FixedCompletions([]string{
		"rts\tRequest To Send (output)",
		"cts\tClear To Send (input)",
	}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("set", cobra.FixedCompletions([]string{
		"0\tlow",
		"1\thigh",
	}, cobra.ShellCompDirectiveNoFileComp))
}

// completeDevices offers the serial devices found under /dev
func completeDevices(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ports, err := rtscts.ListPorts()
	if err != nil || len(ports) == 0 {
		// fall back to path completion, e.g. for pseudo terminals
		return nil, cobra.ShellCompDirectiveDefault
	}

	completions := make([]string, 0, len(ports))
	for _, p := range ports {
		info, err := rtscts.GetPortInfo(p)
		if err != nil {
			completions = append(completions, p)
			continue
		}
		completions = append(completions, p+"\t"+info.Description)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
