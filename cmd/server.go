package cmd

import (
	"context"
	"log"

	"yolo/config"
	dbt "yolo/db/db"
	"yolo/db/file"
	"yolo/db/mem"
	"yolo/db/pg"
	"yolo/mq/gcppubsub"
	"yolo/mq/goch"
	"yolo/mq/mq"
	"yolo/mq/rabbit"
	"yolo/web"

	"github.com/spf13/cobra"
)

func buildStore(dbMode string, dataDir string) dbt.TravelDBWrapper {
	switch dbMode {
	case "memory":
		return mem.NewInMemoryTravelDBWrapper()
	case "file":
		store, err := file.NewFileTravelDBWrapper(dataDir)
		if err != nil {
			log.Fatalf("Failed to open file store at %s: %v", dataDir, err)
		}
		return store
	case "postgres":
		gormDB, err := pg.InitPostgresGORM(pg.CreateDSN())
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		return pg.NewGORMTravelDBWrapper(gormDB)
	default:
		log.Fatalf("Unknown db mode %q (want memory, file or postgres)", dbMode)
		return nil
	}
}

func buildMessageQueue(mqMode string) mq.InquiryMessageQueueWrapper {
	switch mq.Mode(mqMode) {
	case mq.ModeGoChan:
		return goch.NewGoChanInquiryMessageQueueWrapper()
	case mq.ModeRabbit:
		conn := rabbit.NewRabbitConnection(rabbit.CreateAmqpURL())
		wrapper, err := rabbit.NewRabbitInquiryMessageQueueWrapper(conn)
		if err != nil {
			log.Fatalf("Failed to set up RabbitMQ queues: %v", err)
		}
		return wrapper
	case mq.ModeGCPPubSub:
		wrapper, err := gcppubsub.NewGCPInquiryMessageQueueWrapper(context.Background(), gcppubsub.GetGCPProjectID())
		if err != nil {
			log.Fatalf("Failed to set up GCP Pub/Sub queues: %v", err)
		}
		return wrapper
	default:
		log.Fatalf("Unknown mq mode %q (want go_chan, rabbitmq or gcp_pub_sub)", mqMode)
		return nil
	}
}

func serverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `This command starts the web server for the application.`,
		Run: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			isDev := cmd.Flags().Lookup("dev").Value.String() == "true"
			port := cmd.Flags().Lookup("port").Value.String()
			dbMode := cmd.Flags().Lookup("db").Value.String()
			mqMode := cmd.Flags().Lookup("mq").Value.String()
			dataDir := cmd.Flags().Lookup("data").Value.String()

			web.Serve(web.ServiceConfig{
				IsDev: isDev,
				Port:  port,
				Store: buildStore(dbMode, dataDir),
				MQ:    buildMessageQueue(mqMode),
			})
		},
	}

	cmd.Flags().Bool("dev", true, "Run in development mode")
	cmd.Flags().String("port", "8080", "Port to run the web server on")
	cmd.Flags().String("db", "memory", "Storage backend (memory, file, postgres)")
	cmd.Flags().String("data", "data", "Directory for the file backend")
	cmd.Flags().String("mq", "go_chan", "Message queue mode (go_chan, rabbitmq, gcp_pub_sub)")

	return cmd
}
