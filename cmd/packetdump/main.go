package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"

	"bedrockwire/internal/config"
	"bedrockwire/packet"
	"bedrockwire/protocol"
)

func loadConfigOrDefault(path string) *config.Config {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("[packetdump] no config at %s, using defaults: %v", path, err)
		return &config.Config{Dump: config.DumpConfig{ShieldID: int(protocol.CurrentProtocol), InputFormat: "hex"}}
	}
	return cfg
}

func decodeCommand(c *cli.Context) error {
	cfg := loadConfigOrDefault(c.GlobalString("config"))
	shieldID := cfg.Dump.ShieldID
	if c.IsSet("proto") {
		shieldID = c.Int("proto")
	}

	raw := c.Args().First()
	if raw == "" {
		return fmt.Errorf("decode requires a hex-encoded packet payload argument")
	}
	data, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	pool := packet.NewPool()
	io := protocol.NewReader(data, int32(shieldID))
	pkt, err := pool.DecodePacket(io)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	fmt.Printf("[packetdump] id=%d remaining=%d %+v\n", pkt.ID(), io.Remaining(), pkt)
	return nil
}

func encodeCommand(c *cli.Context) error {
	cfg := loadConfigOrDefault(c.GlobalString("config"))
	shieldID := cfg.Dump.ShieldID
	if c.IsSet("proto") {
		shieldID = c.Int("proto")
	}

	pool := packet.NewPool()
	idArg := c.Args().First()
	if idArg == "" {
		return fmt.Errorf("encode requires a packet network id argument")
	}
	var id uint32
	if _, err := fmt.Sscanf(idArg, "%d", &id); err != nil {
		return fmt.Errorf("invalid packet id %q: %w", idArg, err)
	}

	pkt, err := pool.New(id)
	if err != nil {
		return err
	}

	io := protocol.NewWriter(int32(shieldID))
	if err := packet.EncodePacket(io, pkt); err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}

	fmt.Println(hex.EncodeToString(io.Bytes()))
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "packetdump"
	app.Usage = "decode and encode Bedrock Edition network protocol packets"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to a packetdump.ini config file",
			Value: "packetdump.ini",
		},
	}
	app.Commands = []cli.Command{
		cli.Command{
			Name:  "decode",
			Usage: "decode a hex-encoded framed packet payload",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "proto",
					Usage: "protocol version to decode against (overrides config)",
				},
			},
			Action: decodeCommand,
		},
		cli.Command{
			Name:  "encode",
			Usage: "encode the zero-value packet for a network id",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "proto",
					Usage: "protocol version to encode against (overrides config)",
				},
			},
			Action: encodeCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("[packetdump] %v", err)
	}
}
