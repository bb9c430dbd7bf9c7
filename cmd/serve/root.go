package serve

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"serde-api/api"
	cmdUtil "serde-api/cmd/util"
	"serde-api/common"
	"serde-api/lib/serde"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the serde API server",
		Long:    `Start the serde API server with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is SERDE_<flag> (e.g. SERDE_ENDPOINT=0.0.0.0:9090)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitEnv)

	// add flags
	key := "endpoint"
	ServeCmd.PersistentFlags().String(key, common.DefaultEndpoint, cmdUtil.WrapString("The address on which the API will listen (e.g. 0.0.0.0:8080)"))

	key = "indent"
	ServeCmd.PersistentFlags().Int(key, common.DefaultIndent, cmdUtil.WrapString("Number of spaces per nesting level in serialized output"))

	key = "compact"
	ServeCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Emit the most compact serialized form (overrides --indent)"))

	key = "ascii-only"
	ServeCmd.PersistentFlags().Bool(key, false, cmdUtil.WrapString("Escape all non-ASCII code points in serialized output"))

	key = "page-size"
	ServeCmd.PersistentFlags().Int(key, common.DefaultPageSize, cmdUtil.WrapString("Default page size for paginated listings"))

	key = "max-page-size"
	ServeCmd.PersistentFlags().Int(key, common.DefaultMaxPageSize, cmdUtil.WrapString("Upper bound for the page size / limit a request may ask for"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts it to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}

	// read the configuration from the command line flags and environment variables
	serveCmdConfig.Endpoint = viper.GetString("endpoint")
	serveCmdConfig.Indent = viper.GetInt("indent")
	serveCmdConfig.ASCIIOnly = viper.GetBool("ascii-only")
	serveCmdConfig.PageSize = viper.GetInt("page-size")
	serveCmdConfig.MaxPageSize = viper.GetInt("max-page-size")
	serveCmdConfig.LogLevel = viper.GetString("log-level")

	if viper.GetBool("compact") {
		serveCmdConfig.Indent = serde.Compact
	}

	// validate pagination settings
	if serveCmdConfig.PageSize <= 0 {
		return fmt.Errorf("page-size must be positive, got %d", serveCmdConfig.PageSize)
	}
	if serveCmdConfig.MaxPageSize < serveCmdConfig.PageSize {
		return fmt.Errorf("max-page-size (%d) must not be smaller than page-size (%d)",
			serveCmdConfig.MaxPageSize, serveCmdConfig.PageSize)
	}

	// validate the log level before the server starts
	if _, err := common.ParseLogLevel(serveCmdConfig.LogLevel); err != nil {
		return err
	}

	return nil
}

// run starts the serde API server
func run(_ *cobra.Command, _ []string) error {
	if err := common.InitLogger(*serveCmdConfig); err != nil {
		return err
	}

	logger := common.GetLogger("serve")
	logger.Info("Created API Server")
	logger.Info(serveCmdConfig.String())

	serv := api.NewAPIServer(*serveCmdConfig)
	return serv.Listen()
}
