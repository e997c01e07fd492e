package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/qnkhuat/blockfall/pkg"
	"github.com/qnkhuat/blockfall/pkg/game/ssh"
)

var (
	listenAddress string
	hostKeyFile   string
	binary        string
	clientArgs    string
	logPath       string
)

const shutdownTimeout = 10 * time.Second

func init() {
	flag.StringVar(&listenAddress, "listen-ssh", ssh.DefaultAddress, "host SSH server on network address")
	flag.StringVar(&hostKeyFile, "host-key", "", "path to SSH host key (default generated)")
	flag.StringVar(&binary, "blockfall", "blockfall", "path to blockfall client")
	flag.StringVar(&clientArgs, "client-args", "", "extra flags passed to every client, space separated")
	flag.StringVar(&logPath, "log", "", "path to log file (default stderr)")
}

func main() {
	flag.Parse()

	if logPath != "" {
		f, err := pkg.InitLog(logPath, "SERVER: ")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetPrefix("SERVER: ")
	}

	server := &ssh.SSHServer{
		ListenAddress: listenAddress,
		HostKeyFile:   hostKeyFile,
		Binary:        binary,
		Args:          strings.Fields(clientArgs),
	}

	color.New(color.FgGreen, color.Bold).Printf("blockfall server ")
	color.New(color.FgCyan).Printf("ssh -p %s localhost\n", strings.TrimPrefix(listenAddress, ":"))

	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != nil {
			log.Fatal(err)
		}
	case sig := <-sigc:
		log.Printf("Received %s, shutting down", sig)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("failed to shut down: %s", err)
		}
	}
}
