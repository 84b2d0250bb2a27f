package tools

import (
	"context"

	"hello-server/internal/mcp/protocol"
)

// SayHelloToolName is the name under which the greeting tool is registered
const SayHelloToolName = "say_hello"

const invalidNameArgument = "Missing or invalid 'name' argument"

// SayHelloArgs holds the validated arguments of say_hello
type SayHelloArgs struct {
	Name string
}

// ParseSayHelloArgs validates the raw argument map of a say_hello call.
// The map must be present and hold a string under "name".
func ParseSayHelloArgs(arguments map[string]interface{}) (SayHelloArgs, error) {
	if arguments == nil {
		return SayHelloArgs{}, protocol.NewInvalidToolInputError(invalidNameArgument)
	}

	name, ok := arguments["name"].(string)
	if !ok {
		return SayHelloArgs{}, protocol.NewInvalidToolInputError(invalidNameArgument)
	}

	return SayHelloArgs{Name: name}, nil
}

// Greeting formats the greeting for name. The name is used verbatim.
func Greeting(name string) string {
	return "Hello, " + name + "! Nice to meet you."
}

// SayHelloTool returns the say_hello descriptor and its handler
func SayHelloTool() LocalTool {
	return LocalTool{
		Tool: protocol.Tool{
			Name:        SayHelloToolName,
			Description: "Returns a greeting with the provided name",
			InputSchema: protocol.ToolInputSchema{
				Type: "object",
				Properties: map[string]protocol.PropertySchema{
					"name": {
						Type:        "string",
						Description: "The name to greet",
					},
				},
				Required: []string{"name"},
			},
		},
		Handler: handleSayHello,
	}
}

func handleSayHello(ctx context.Context, arguments map[string]interface{}) (*protocol.ToolCallResult, error) {
	args, err := ParseSayHelloArgs(arguments)
	if err != nil {
		return nil, err
	}
	return protocol.NewTextResult(Greeting(args.Name)), nil
}
