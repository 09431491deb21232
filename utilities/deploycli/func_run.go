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

package deploycli

import (
	"context"

	"github.com/BrunoReboul/gcfdeploy/utilities/deploy"
	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
	"github.com/BrunoReboul/gcfdeploy/utilities/ffo"
	"github.com/BrunoReboul/gcfdeploy/utilities/gcf"
	"github.com/BrunoReboul/gcfdeploy/utilities/solution"
	"go.uber.org/zap"
)

// Run validates settings, checks the function directory, then deploys it.
// Nothing remote is touched until the first two checks pass
func Run(ctx context.Context, settings solution.Settings, logger *zap.Logger, connect Connector) (err error) {
	err = settings.Validate()
	if err != nil {
		return err
	}
	if !ffo.IsDirectory(settings.FunctionDirectory) {
		return erm.ErrCloudFunctionDirectoryNonExistent
	}

	core := deploy.NewCore(ctx, settings, logger)
	err = deployFunction(core, connect)
	if err != nil {
		core.Logger.Debug("gcf deployment failure cause", zap.Error(err))
		return erm.NewDeployFailedError(err)
	}
	return nil
}

func deployFunction(core *deploy.Core, connect Connector) (err error) {
	services, err := connect(core.Ctx, core.Settings)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := services.Close(); closeErr != nil {
			core.Logger.Debug("gcf closing services", zap.Error(closeErr))
		}
	}()
	return gcf.NewFunctionDeployment(core, services).Deploy()
}
