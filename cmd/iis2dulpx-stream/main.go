// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// iis2dulpx-stream publishes decoded accelerometer FIFO records over MQTT.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/iis2dulpx"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

type accelMsg struct {
	X    float64 `json:"x_mg"`
	Y    float64 `json:"y_mg"`
	Z    float64 `json:"z_mg"`
	Time string  `json:"time"`
}

type tempMsg struct {
	DegC float64 `json:"deg_c"`
	Time string  `json:"time"`
}

func mainImpl() error {
	i2cID := flag.String("i2c", "", "I²C bus to use (default, the first available)")
	addr := flag.Uint("addr", uint(iis2dulpx.DefaultAddress), "I²C address")
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker")
	clientID := flag.String("client-id", "iis2dulpx-stream", "MQTT client ID")
	topic := flag.String("topic", "iis2dulpx/accel", "topic for acceleration records")
	tempTopic := flag.String("temp-topic", "iis2dulpx/temp", "topic for temperature records")
	every := flag.Duration("every", 100*time.Millisecond, "FIFO poll interval")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*i2cID)
	if err != nil {
		return err
	}
	defer b.Close()

	dev, err := iis2dulpx.NewI2C(b, uint16(*addr), &iis2dulpx.DefaultOpts)
	if err != nil {
		return err
	}
	defer dev.Halt()

	if err := dev.SetFIFO(iis2dulpx.FIFOConfig{
		Operation: iis2dulpx.StreamMode,
		Watermark: 16,
	}); err != nil {
		return err
	}

	opts := mqtt.NewClientOptions().
		AddBroker(*broker).
		SetClientID(*clientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("connected to %s, streaming to %s", *broker, *topic)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(*every)
	defer ticker.Stop()
	for {
		select {
		case <-interrupt:
			return nil
		case t := <-ticker.C:
			status, err := dev.ReadFIFOStatus()
			if err != nil {
				log.Printf("fifo status error: %v", err)
				continue
			}
			for i := byte(0); i < status.Level; i++ {
				rec, err := dev.ReadFIFORecord()
				if err != nil {
					log.Printf("fifo read error: %v", err)
					break
				}
				for s := 0; s < rec.Samples; s++ {
					payload, err := json.Marshal(accelMsg{
						X:    rec.Accel[s].MilliG[0],
						Y:    rec.Accel[s].MilliG[1],
						Z:    rec.Accel[s].MilliG[2],
						Time: t.Format(time.RFC3339Nano),
					})
					if err != nil {
						log.Printf("json marshal error: %v", err)
						continue
					}
					if token := client.Publish(*topic, 0, false, payload); token.Wait() && token.Error() != nil {
						log.Printf("MQTT publish error: %v", token.Error())
					}
				}
				if rec.Tag == iis2dulpx.TagAccelTemp && rec.Samples > 0 {
					payload, err := json.Marshal(tempMsg{
						DegC: rec.DegC,
						Time: t.Format(time.RFC3339Nano),
					})
					if err != nil {
						log.Printf("json marshal error: %v", err)
						continue
					}
					if token := client.Publish(*tempTopic, 0, false, payload); token.Wait() && token.Error() != nil {
						log.Printf("MQTT publish error: %v", token.Error())
					}
				}
			}
		}
	}
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("iis2dulpx-stream: %v", err)
	}
}
