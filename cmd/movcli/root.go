package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Flags globais
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "movcli",
	Short: "Análise de movimentações de estoque a partir de planilhas",
	Long: `movcli lê uma planilha de movimentações (xlsx, json ou texto CSV/TSV),
classifica cada linha pelo código de operação e imprime o documento de análise:
totais por período, pivô mensal, sazonalidade e, com --cost, o bloco financeiro.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(cmd.ErrOrStderr())
		logrus.SetLevel(logrus.WarnLevel)
		if debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute é chamado por main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Erro:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "arquivo JSON de configuração da análise (padrão: configuração embutida)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "habilita logs de depuração")
}
