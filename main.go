package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/WangWilly/birdboard/pkgs/clients/birdclient"
	"github.com/WangWilly/birdboard/pkgs/config"
	"github.com/WangWilly/birdboard/pkgs/dashboard"
	"github.com/WangWilly/birdboard/pkgs/logger"
	"github.com/WangWilly/birdboard/pkgs/serverpkg/server"
	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////
// Main Application Entry Point
////////////////////////////////////////////////////////////////////////////////

func main() {
	println("birdboard - personal dashboard server")

	////////////////////////////////////////////////////////////////////////////
	// Command Line Arguments Setup
	////////////////////////////////////////////////////////////////////////////
	var confArg bool
	var isDebug bool
	var portArg string

	flag.BoolVar(&confArg, "conf", false, "reconfigure")
	flag.BoolVar(&isDebug, "debug", false, "display debug message")
	flag.StringVar(&portArg, "port", "", "override the configured listen port")
	flag.Parse()

	ctx := context.Background()

	var homepath string
	if runtime.GOOS == "windows" {
		homepath = os.Getenv("appdata")
	} else {
		homepath = os.Getenv("HOME")
	}
	if homepath == "" {
		panic("failed to get home path from env")
	}

	appRootPath := filepath.Join(homepath, ".birdboard")
	confPath := filepath.Join(appRootPath, "conf.yaml")
	cliLogPath := filepath.Join(appRootPath, "client.log")
	logPath := filepath.Join(appRootPath, "birdboard.log")
	if err := os.MkdirAll(appRootPath, 0755); err != nil {
		log.Fatalln("failed to make app dir", err)
	}

	////////////////////////////////////////////////////////////////////////////
	// Logger Initialization
	////////////////////////////////////////////////////////////////////////////
	logFile, err := os.OpenFile(logPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln("failed to create log file:", err)
	}
	defer logFile.Close()
	logger.InitLogger(isDebug, logFile)

	////////////////////////////////////////////////////////////////////////////
	// Configuration Loading
	////////////////////////////////////////////////////////////////////////////
	conf, err := config.ReadConfig(confPath)
	if os.IsNotExist(err) || confArg {
		conf, err = config.PromptConfig(confPath)
		if err != nil {
			log.Fatalln("config failure with", err)
		}
	}
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}
	if confArg {
		log.Println("config done")
		return
	}
	if portArg != "" {
		conf.Port = portArg
	}
	log.Infoln("config is loaded")

	////////////////////////////////////////////////////////////////////////////
	// API Client Setup
	////////////////////////////////////////////////////////////////////////////
	client := birdclient.New(conf.Credentials)

	clientLogFile, err := os.OpenFile(cliLogPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		log.Fatalln("failed to create log file:", err)
	}
	defer clientLogFile.Close()
	logger.SetRestyLogger(client.GetRestyClient(), clientLogFile)

	// verify the credentials before serving anything
	rawProfile, err := client.GetProfile(ctx)
	if err != nil {
		log.Fatalln("failed to verify credentials:", err)
	}
	screenName := gjson.GetBytes(rawProfile, "screen_name").String()
	log.Infoln("signed in as:", color.FgLightBlue.Render(screenName))

	////////////////////////////////////////////////////////////////////////////
	// Aggregator and Server Setup
	////////////////////////////////////////////////////////////////////////////
	aggregator := dashboard.New(client, dashboard.Config{
		Username:     conf.Username,
		MessageCount: conf.MessageCount,
	})

	srv, err := server.New(aggregator, conf.Port)
	if err != nil {
		log.Fatalln("failed to create server:", err)
	}

	// listen signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer close(sigChan)
	defer signal.Stop(sigChan)
	go func() {
		sig, ok := <-sigChan
		if ok {
			log.Warnln("[listener] caught signal:", sig)
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Errorln("failed to stop server:", err)
			}
		}
	}()

	////////////////////////////////////////////////////////////////////////////
	// Serve
	////////////////////////////////////////////////////////////////////////////
	log.Infof("open http://localhost:%s to view the dashboard", conf.Port)
	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatalln("server failed:", err)
	}
}
