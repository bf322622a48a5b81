// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/corridorlabs/remitagent/services/transfer/catalog"
	"github.com/corridorlabs/remitagent/services/transfer/collect"
	"github.com/corridorlabs/remitagent/services/transfer/state"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive local session with the collection engine",
	Long: "Starts a terminal conversation against an in-process session. Type transfer\n" +
		"details in plain language; 'summary' shows the collected slots, 'send'\n" +
		"executes the transfer, 'quit' exits.",
	RunE: runChatCommand,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	replyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

func runChatCommand(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	collector := collect.New(catalog.Default(), logger)
	sessions := state.NewSessionManager()
	id, st := sessions.Create()

	fmt.Println(noteStyle.Render("remitagent chat — session " + id))
	fmt.Println(noteStyle.Render("commands: summary, send, quit"))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		case "summary":
			for key, val := range collector.Summary(st) {
				if val == nil {
					val = "—"
				}
				fmt.Println(replyStyle.Render(fmt.Sprintf("  %s: %v", key, val)))
			}
		case "send":
			msg, _ := collector.SendMoney(st)
			fmt.Println(replyStyle.Render(msg))
		default:
			fmt.Println(replyStyle.Render(collector.HandleTurn(st, line)))
		}
		fmt.Println()
	}
	return scanner.Err()
}
