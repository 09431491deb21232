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

package deploy

import (
	"context"

	"github.com/BrunoReboul/gcfdeploy/utilities/solution"
	"go.uber.org/zap"
)

// Core structure common to all deployment steps
type Core struct {
	Ctx      context.Context `yaml:"-"`
	Settings solution.Settings
	Logger   *zap.Logger `yaml:"-"`
}

// NewCore settings must have been situated
func NewCore(ctx context.Context, settings solution.Settings, logger *zap.Logger) *Core {
	return &Core{
		Ctx:      ctx,
		Settings: settings,
		Logger:   logger.With(zap.String("instance_name", settings.FunctionName)),
	}
}
