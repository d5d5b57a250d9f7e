package pantry_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for pantry service end-to-end tests.
 * This includes container setup, account setup, and assertions.
 */

const (
	testImageName = "pantry-test:latest"

	testPassword = "correct-horse-battery"
)

// TestMain builds the Docker image once before all tests and removes it after
// they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Pantry Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Pantry Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/pantry/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// setupPantryContainer starts the service in a container and returns a client
// pointed at it.
func setupPantryContainer(t *testing.T) (*pantrysdk.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"PANTRY_ISSUER": "pantry-e2e",
			"ENV":           "test",
			"LOG_LEVEL":     "info",
			"LOG_FORMAT":    "json",
			// Tests sign up many accounts from one address.
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	client := pantrysdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return client, cleanup
}

// signupAndLogin creates an account with its own family and logs it in.
func signupAndLogin(t *testing.T, client *pantrysdk.Client, email, familyName string) (*pantrysdk.SignupResponse, *pantrysdk.Session) {
	t.Helper()

	resp, err := client.Signup(t.Context(), pantrysdk.SignupRequest{
		Email:      email,
		Password:   testPassword,
		FamilyName: familyName,
	})
	require.NoError(t, err, "Signup should succeed")
	require.Equal(t, "admin", resp.Role)

	return resp, login(t, client, email)
}

// invite has admin invite email and signs the invitee up with the token.
func invite(t *testing.T, client *pantrysdk.Client, admin *pantrysdk.Session, email string) (*pantrysdk.SignupResponse, *pantrysdk.Session) {
	t.Helper()

	inv, err := admin.CreateInvitation(t.Context(), pantrysdk.CreateInvitationRequest{Email: email})
	require.NoError(t, err, "CreateInvitation should succeed")
	require.NotEmpty(t, inv.Token)

	resp, err := client.Signup(t.Context(), pantrysdk.SignupRequest{
		Email:       email,
		Password:    testPassword,
		InviteToken: inv.Token,
	})
	require.NoError(t, err, "Signup with invitation should succeed")
	require.Equal(t, "member", resp.Role)
	require.Equal(t, inv.FamilyID, resp.FamilyID)

	return resp, login(t, client, email)
}

func login(t *testing.T, client *pantrysdk.Client, email string) *pantrysdk.Session {
	t.Helper()

	session, err := client.Login(t.Context(), email, testPassword)
	require.NoError(t, err, "Login should succeed")
	require.NotEmpty(t, session.AccessToken())
	return session
}

// assertCode checks that err is an API error carrying code.
func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, pantrysdk.IsCode(err, code), "expected %s, got: %v", code, err)
}

func assertHealthy(t *testing.T, health *pantrysdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
