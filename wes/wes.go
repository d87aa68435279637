// Package wes declares the request and response bodies of the GA4GH
// Workflow Execution Service API as schema described models.
//
// Every model is a struct of marshaller.Field values with nil safe GetX
// getters and SetX setters. Models are converted from and to wire maps with
// marshaller.Deserialize and marshaller.Serialize; importing this package
// registers them so they can be created by name.
package wes

import (
	"github.com/speakeasy-api/wes/marshaller"
)

// Model names as registered with the marshaller.
const (
	ModelDefaultWorkflowEngineParameter = "DefaultWorkflowEngineParameter"
	ModelRunID                          = "RunId"
	ModelWorkflowTypeVersion            = "WorkflowTypeVersion"
	ModelServiceInfo                    = "ServiceInfo"
	ModelRunRequest                     = "RunRequest"
	ModelRunStatus                      = "RunStatus"
	ModelRunListResponse                = "RunListResponse"
	ModelLog                            = "Log"
	ModelRunLog                         = "RunLog"
	ModelErrorResponse                  = "ErrorResponse"
)

func init() {
	marshaller.Register(defaultWorkflowEngineParameterSchema)
	marshaller.Register(runIDSchema)
	marshaller.Register(workflowTypeVersionSchema)
	marshaller.Register(serviceInfoSchema)
	marshaller.Register(runRequestSchema)
	marshaller.Register(runStatusSchema)
	marshaller.Register(runListResponseSchema)
	marshaller.Register(logSchema)
	marshaller.Register(runLogSchema)
	marshaller.Register(errorResponseSchema)
}
