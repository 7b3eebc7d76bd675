/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables, set
// either by defaults or read from a TOML config file.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/chessgen/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level, overwritten by the config file if present.
	LogLevel = 5

	// TestLogLevel defines the log level used by package tests.
	TestLogLevel = 5

	// Settings is the global configuration decoded from the config file.
	Settings conf

	initialized = false
)

type conf struct {
	Log logConfiguration
}

type logConfiguration struct {
	Level     int
	TestLevel int
}

// Setup reads the configuration file and sets package-level settings from
// it, falling back to the defaults above when the file is absent or
// malformed.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}
	setupLogLvl()
	initialized = true
}

func setupLogLvl() {
	if Settings.Log.Level > 0 {
		LogLevel = Settings.Log.Level
	}
	if Settings.Log.TestLevel > 0 {
		TestLogLevel = Settings.Log.TestLevel
	}
}
