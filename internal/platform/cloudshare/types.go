package cloudshare

// Request and response shapes for the endpoints the onboarding workflow uses.
// Optional response fields are plain strings; emptiness is checked by the
// typed endpoint methods, not by callers.

// PingResponse is returned by GET /ping.
type PingResponse struct {
	Result string `json:"result"`
}

// User is the calling user's profile.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateProjectRequest is the body of POST /Projects/CreateFastProject.
type CreateProjectRequest struct {
	SubscriptionID string   `json:"subscriptionId"`
	ProjectName    string   `json:"projectName"`
	TeamNames      []string `json:"teamNames"`
	ProjectType    int      `json:"projectType"`
}

// Project is the response of project creation. The API answers 200 with a
// message and no id when creation was refused.
type Project struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Team is one row of GET /teams.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type teamsResponse struct {
	Rows []Team `json:"rows"`
}

// Policy is one entry of GET /projects/{id}/policies.
type Policy struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InvitationRequest is the body of POST /invitations/actions/inviteprojectmember.
type InvitationRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ProjectID      string `json:"projectId"`
	TeamID         string `json:"teamId"`
	UserLevel      int    `json:"userLevel"`
	SuppressEmails bool   `json:"suppressEmails"`
}

// Invitation is the (loosely specified) invitation response.
type Invitation struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// EnvironmentRequest is the body of POST /envs.
type EnvironmentRequest struct {
	Environment             EnvironmentSpec `json:"environment"`
	Preview                 bool            `json:"preview"`
	ItemsCart               []CartItem      `json:"itemsCart"`
	EnableAutomaticSnapshot bool            `json:"enableAutomaticSnapshot"`
}

// EnvironmentSpec describes the environment being created.
type EnvironmentSpec struct {
	Name              string `json:"name"`
	ProjectID         string `json:"projectId"`
	TeamID            string `json:"teamId"`
	PolicyID          string `json:"policyId"`
	RegionID          string `json:"regionId"`
	Description       string `json:"description"`
	ExternalCloudData []any  `json:"externalCloudData"`
	OwnerEmail        string `json:"OwnerEmail"`
}

// CartItemTypeTemplateVM is the itemsCart type for a VM built from a template.
const CartItemTypeTemplateVM = 2

// CartItem is one VM in the environment cart.
type CartItem struct {
	Type               int      `json:"type"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	ChocolateyPackages []string `json:"chocolateyPackages"`
	TemplateVMID       string   `json:"templateVmId"`
}

// Environment is the environment creation response.
type Environment struct {
	ID      string `json:"environmentId,omitempty"`
	Message string `json:"message,omitempty"`
}
