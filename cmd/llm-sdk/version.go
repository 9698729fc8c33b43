package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-llm-sdk/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCmd) Run(ctx *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}
