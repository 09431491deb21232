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

package gcf

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// waitOperation polls the patch operation until it is done. Poll errors are not retried
func (functionDeployment *FunctionDeployment) waitOperation() (err error) {
	ctx := functionDeployment.Core.Ctx
	operation := functionDeployment.Artifacts.Operation
	name := operation.Name
	for !operation.Done {
		select {
		case <-ctx.Done():
			return fmt.Errorf("gcf waiting for operation %s %w", name, ctx.Err())
		case <-time.After(functionDeployment.PollInterval):
		}
		operation, err = functionDeployment.Services.Functions.GetOperation(ctx, name)
		if err != nil {
			return fmt.Errorf("OperationsService.Get %w", err)
		}
		if operation == nil {
			return fmt.Errorf("OperationsService.Get returned no operation %s", name)
		}
		functionDeployment.Core.Logger.Debug("gcf operation status", zap.String("operation_name", name), zap.Bool("done", operation.Done))
	}
	functionDeployment.Artifacts.Operation = operation
	if operation.Error != nil {
		return fmt.Errorf("gcf function deployment error code %d %s", operation.Error.Code, operation.Error.Message)
	}
	functionDeployment.Core.Logger.Info("gcf cloud function deployment done", zap.String("operation_name", name))
	return nil
}
