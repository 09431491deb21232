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
	"context"

	"google.golang.org/api/cloudfunctions/v1"
)

// FunctionsService is what the deployment needs from the cloud functions API
type FunctionsService interface {
	Get(ctx context.Context, name string) (*cloudfunctions.CloudFunction, error)
	GenerateUploadURL(ctx context.Context, parent string) (string, error)
	Patch(ctx context.Context, name string, cloudFunction *cloudfunctions.CloudFunction) (*cloudfunctions.Operation, error)
	GetOperation(ctx context.Context, name string) (*cloudfunctions.Operation, error)
}

// cloudFunctionsService makes a *cloudfunctions.Service satisfy FunctionsService
type cloudFunctionsService struct {
	projectsLocationsFunctionsService *cloudfunctions.ProjectsLocationsFunctionsService
	operationsService                 *cloudfunctions.OperationsService
}

// NewFunctionsService wraps a cloud functions v1 service
func NewFunctionsService(service *cloudfunctions.Service) FunctionsService {
	return &cloudFunctionsService{
		projectsLocationsFunctionsService: service.Projects.Locations.Functions,
		operationsService:                 service.Operations,
	}
}

func (s *cloudFunctionsService) Get(ctx context.Context, name string) (*cloudfunctions.CloudFunction, error) {
	return s.projectsLocationsFunctionsService.Get(name).Context(ctx).Do()
}

func (s *cloudFunctionsService) GenerateUploadURL(ctx context.Context, parent string) (string, error) {
	// The request body must be empty https://cloud.google.com/functions/docs/reference/rest/v1/projects.locations.functions/generateUploadUrl
	var generateUploadURLRequest cloudfunctions.GenerateUploadUrlRequest
	generateUploadURLResponse, err := s.projectsLocationsFunctionsService.GenerateUploadUrl(parent,
		&generateUploadURLRequest).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return generateUploadURLResponse.UploadUrl, nil
}

func (s *cloudFunctionsService) Patch(ctx context.Context, name string, cloudFunction *cloudfunctions.CloudFunction) (*cloudfunctions.Operation, error) {
	return s.projectsLocationsFunctionsService.Patch(name, cloudFunction).Context(ctx).Do()
}

func (s *cloudFunctionsService) GetOperation(ctx context.Context, name string) (*cloudfunctions.Operation, error) {
	return s.operationsService.Get(name).Context(ctx).Do()
}
