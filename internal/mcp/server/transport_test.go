package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"hello-server/internal/config"
	"hello-server/internal/mcp/protocol"
	"hello-server/internal/mcp/tools"
	"hello-server/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stdioClient drives a TransportManager over in-memory pipes
type stdioClient struct {
	t       *testing.T
	in      *io.PipeWriter
	encoder *json.Encoder
	decoder *json.Decoder
	errChan chan error
}

func startStdioTransport(t *testing.T, ctx context.Context, logs io.Writer) *stdioClient {
	t.Helper()

	cfg := config.DefaultConfig()
	logger := util.NewLogger(logs, util.LevelInfo, false)
	mcpServer := NewMCPServer(cfg, logger)
	require.NoError(t, NewToolManager(tools.NewDefaultRegistry()).RegisterTools(mcpServer))

	inReader, inWriter := io.Pipe()
	outReader, outWriter := io.Pipe()

	tm := NewTransportManager(cfg, mcpServer, logger)
	tm.SetStreams(inReader, outWriter)

	errChan := make(chan error, 1)
	go func() {
		errChan <- tm.StartTransport(ctx)
	}()

	t.Cleanup(func() {
		inWriter.Close()
		outReader.Close()
	})

	return &stdioClient{
		t:       t,
		in:      inWriter,
		encoder: json.NewEncoder(inWriter),
		decoder: json.NewDecoder(bufio.NewReader(outReader)),
		errChan: errChan,
	}
}

func (c *stdioClient) send(message map[string]interface{}) {
	c.t.Helper()
	require.NoError(c.t, c.encoder.Encode(message))
}

func (c *stdioClient) request(id int, method string, params map[string]interface{}) map[string]interface{} {
	c.t.Helper()

	message := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
	}
	if params != nil {
		message["params"] = params
	}
	c.send(message)

	var response map[string]interface{}
	require.NoError(c.t, c.decoder.Decode(&response))
	assert.Equal(c.t, "2.0", response["jsonrpc"])
	assert.Equal(c.t, float64(id), response["id"])
	return response
}

// decodeInto re-encodes a generic JSON value into a typed protocol struct
func decodeInto(t *testing.T, value interface{}, target interface{}) {
	t.Helper()

	data, err := json.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target))
}

func (c *stdioClient) wait() error {
	c.t.Helper()

	select {
	case err := <-c.errChan:
		return err
	case <-time.After(5 * time.Second):
		c.t.Fatal("transport did not stop")
		return nil
	}
}

func TestStdioTransport_Session(t *testing.T) {
	var logs bytes.Buffer
	client := startStdioTransport(t, context.Background(), &logs)

	// Initialize
	response := client.request(1, protocol.MethodInitialize, map[string]interface{}{
		"protocolVersion": protocol.MCPProtocolVersion,
		"capabilities":    map[string]interface{}{},
		"clientInfo": map[string]string{
			"name":    "test-client",
			"version": "1.0.0",
		},
	})
	require.Nil(t, response["error"])
	result := response["result"].(map[string]interface{})
	var serverInfo protocol.Implementation
	decodeInto(t, result["serverInfo"], &serverInfo)
	assert.Equal(t, protocol.Implementation{Name: "hello-server", Version: "1.0.0"}, serverInfo)
	capabilities := result["capabilities"].(map[string]interface{})
	assert.Contains(t, capabilities, "tools")

	client.send(map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  protocol.MethodInitialized,
	})

	// List tools
	response = client.request(2, protocol.MethodListTools, map[string]interface{}{})
	require.Nil(t, response["error"])
	var listed protocol.ListToolsResult
	decodeInto(t, response["result"], &listed)
	require.Len(t, listed.Tools, 1)
	assert.Equal(t, tools.NewDefaultRegistry().ListTools()[0], listed.Tools[0])

	// Call the tool
	response = client.request(3, protocol.MethodCallTool, map[string]interface{}{
		"name":      "say_hello",
		"arguments": map[string]interface{}{"name": "Ada"},
	})
	require.Nil(t, response["error"])
	var called protocol.ToolCallResult
	decodeInto(t, response["result"], &called)
	assert.Equal(t, *protocol.NewTextResult("Hello, Ada! Nice to meet you."), called)

	// Invalid argument
	response = client.request(4, protocol.MethodCallTool, map[string]interface{}{
		"name":      "say_hello",
		"arguments": map[string]interface{}{"name": 42},
	})
	require.NotNil(t, response["error"])
	assert.Contains(t, response["error"].(map[string]interface{})["message"], "Missing or invalid 'name' argument")

	// Unknown tool
	response = client.request(5, protocol.MethodCallTool, map[string]interface{}{
		"name":      "other_tool",
		"arguments": map[string]interface{}{"name": "Ada"},
	})
	require.NotNil(t, response["error"])
	assert.Contains(t, response["error"].(map[string]interface{})["message"], "other_tool")

	// Closing stdin is a normal shutdown
	require.NoError(t, client.in.Close())
	assert.NoError(t, client.wait())

	assert.Contains(t, logs.String(), "hello-server 1.0.0 running on stdio")
	assert.Contains(t, logs.String(), "[WARN] tools/call failed")
}

func TestStdioTransport_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := startStdioTransport(t, ctx, io.Discard)

	response := client.request(1, protocol.MethodPing, nil)
	assert.Nil(t, response["error"])

	cancel()
	assert.NoError(t, client.wait())
}

func TestTransportManager_UnsupportedTransport(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Transport.Type = "websocket"
	logger := util.NewLogger(io.Discard, util.LevelInfo, false)

	tm := NewTransportManager(cfg, NewMCPServer(cfg, logger), logger)
	err := tm.StartTransport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type: websocket")
}
