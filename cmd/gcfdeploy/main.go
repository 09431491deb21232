// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/BrunoReboul/gcfdeploy/utilities/deploycli"
	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
	"github.com/BrunoReboul/gcfdeploy/utilities/logging"
	"github.com/BrunoReboul/gcfdeploy/utilities/solution"
)

const (
	exitSuccess = iota
	exitDeployFailed
	exitConfigurationError
	exitDirectoryNonExistent
)

func main() {
	settingsPath := flag.String("settings", "", "optional yaml settings file, environment variables take precedence")
	flag.Parse()
	os.Exit(run(context.Background(), *settingsPath))
}

func run(ctx context.Context, settingsPath string) int {
	settings, err := solution.ReadSettings(settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitConfigurationError
	}
	err = settings.Situate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	logger := logging.NewLogger(settings.Debug)
	defer logger.Sync()

	err = deploycli.Run(ctx, *settings, logger, deploycli.ConnectGoogleServices)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	var configurationError *erm.ConfigurationError
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &configurationError):
		return exitConfigurationError
	case errors.Is(err, erm.ErrCloudFunctionDirectoryNonExistent):
		return exitDirectoryNonExistent
	default:
		return exitDeployFailed
	}
}
