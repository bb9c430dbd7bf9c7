package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Server configuration struct
// --------------------------------------------------------------------------

// Default values used when the corresponding flag or environment variable is
// not set
const (
	DefaultEndpoint    = "0.0.0.0:8080"
	DefaultIndent      = 2
	DefaultPageSize    = 20
	DefaultMaxPageSize = 100
)

// ServerConfig holds all configuration parameters for the API server
type ServerConfig struct {
	// HTTP api settings
	Endpoint string

	// Serializer settings
	Indent    int
	ASCIIOnly bool

	// Pagination settings
	PageSize    int
	MaxPageSize int

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// API settings
	addSection("API Server")
	addField("Endpoint", c.Endpoint)

	// Serializer settings
	addSection("Serializer")
	if c.Indent < 0 {
		addField("Indent", "compact")
	} else {
		addField("Indent", strconv.Itoa(c.Indent))
	}
	addField("ASCII Only", strconv.FormatBool(c.ASCIIOnly))

	// Pagination settings
	addSection("Pagination")
	addField("Page Size", strconv.Itoa(c.PageSize))
	addField("Max Page Size", strconv.Itoa(c.MaxPageSize))

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
