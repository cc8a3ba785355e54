package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run выполняет одну команду справочника и возвращает код завершения.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stderr: stderr}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if a.logger != nil {
			a.logger.Error("команда завершилась с ошибкой", zap.Error(err))
		}
		_, _ = fmt.Fprintln(stderr, "Ошибка:", err)
		return 1
	}
	return 0
}
