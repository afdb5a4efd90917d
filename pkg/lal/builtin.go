package lal

// builtinPatterns returns the shipped pattern library: React hooks, Django
// ORM declarations and BSD socket creation. Registration order is the
// order returned here, which fixes tie-breaking in suggestion ranking.
func builtinPatterns() []Pattern {
	patterns := make([]Pattern, 0, 5)
	patterns = append(patterns, reactPatterns()...)
	patterns = append(patterns, djangoPatterns()...)
	patterns = append(patterns, networkingPatterns()...)

	return patterns
}

func reactPatterns() []Pattern {
	return []Pattern{
		{
			Name:      "useState",
			Library:   "react",
			Ecosystem: "javascript",
			Signature: "const [state, setState] = useState(initialValue)",
			Semantics: PatternSemantics{
				Intent:       "reactive_state_management",
				Category:     "state",
				Behavior:     "Creates reactive state that triggers re-renders",
				SideEffects:  []string{"component_rerender"},
				Requirements: []string{"react_component_context"},
				Mutability:   true,
				Reactivity:   true,
			},
			Parameters: []PatternParameter{
				{
					Name:         "initialValue",
					Type:         "any",
					Required:     true,
					DefaultValue: "undefined",
					Description:  "Initial state value",
				},
			},
			Transformations: map[string]TransformRule{
				"vue": {
					TargetLibrary: "vue",
					TargetPattern: "ref",
					Template:      "const {{state}} = ref({{initialValue}})",
					Imports:       []string{"import { ref } from 'vue'"},
					ParameterMappings: map[string]string{
						"setState": "{{state}}.value = ",
					},
				},
				"svelte": {
					TargetLibrary: "svelte",
					TargetPattern: "writable",
					Template:      "const {{state}} = writable({{initialValue}})",
					Imports:       []string{"import { writable } from 'svelte/store'"},
				},
			},
		},
		{
			Name:      "useEffect",
			Library:   "react",
			Ecosystem: "javascript",
			Signature: "useEffect(callback, dependencies)",
			Semantics: PatternSemantics{
				Intent:       "side_effect_lifecycle",
				Category:     "lifecycle",
				Behavior:     "Executes side effects after render",
				SideEffects:  []string{"dom_mutation", "api_calls", "subscriptions"},
				Requirements: []string{"react_component_context"},
				Mutability:   false,
				Reactivity:   true,
			},
			Parameters: []PatternParameter{
				{
					Name:        "callback",
					Type:        "function",
					Required:    true,
					Description: "Effect callback function",
				},
				{
					Name:         "dependencies",
					Type:         "array",
					Required:     false,
					DefaultValue: "[]",
					Description:  "Dependency array",
				},
			},
			Transformations: map[string]TransformRule{
				"vue": {
					TargetLibrary: "vue",
					TargetPattern: "watchEffect",
					Template:      "watchEffect(() => { {{callback}} })",
					Imports:       []string{"import { watchEffect } from 'vue'"},
				},
			},
		},
	}
}

func djangoPatterns() []Pattern {
	return []Pattern{
		{
			Name:      "Model",
			Library:   "django",
			Ecosystem: "python",
			Signature: "class MyModel(models.Model)",
			Semantics: PatternSemantics{
				Intent:       "orm_model",
				Category:     "database",
				Behavior:     "Defines a database table structure",
				SideEffects:  []string{"database_table_creation"},
				Requirements: []string{"django_orm"},
				Mutability:   true,
				Reactivity:   false,
			},
			Transformations: map[string]TransformRule{
				"sqlalchemy": {
					TargetLibrary: "sqlalchemy",
					TargetPattern: "declarative_base",
					Template:      "class {{name}}(Base):\n    __tablename__ = '{{table_name}}'",
					Imports: []string{
						"from sqlalchemy.ext.declarative import declarative_base",
						"Base = declarative_base()",
					},
				},
			},
		},
		{
			Name:      "CharField",
			Library:   "django",
			Ecosystem: "python",
			Signature: "field = models.CharField(max_length=100)",
			Semantics: PatternSemantics{
				Intent:       "text_field",
				Category:     "database_field",
				Behavior:     "Defines a text field in database",
				SideEffects:  []string{"database_column_creation"},
				Requirements: []string{"django_model"},
				Mutability:   true,
				Reactivity:   false,
			},
			Parameters: []PatternParameter{
				{
					Name:        "max_length",
					Type:        "integer",
					Required:    true,
					Description: "Maximum character length",
				},
			},
			Transformations: map[string]TransformRule{
				"sqlalchemy": {
					TargetLibrary: "sqlalchemy",
					TargetPattern: "String",
					Template:      "{{field_name}} = Column(String({{max_length}}))",
					Imports:       []string{"from sqlalchemy import Column, String"},
				},
			},
		},
	}
}

func networkingPatterns() []Pattern {
	return []Pattern{
		{
			Name:      "tcp_socket",
			Library:   "socket",
			Ecosystem: "c",
			Signature: "int sock = socket(AF_INET, SOCK_STREAM, 0)",
			Semantics: PatternSemantics{
				Intent:       "tcp_socket_creation",
				Category:     "networking",
				Behavior:     "Creates a TCP socket for network communication",
				SideEffects:  []string{"system_resource_allocation"},
				Requirements: []string{"socket_library"},
				Mutability:   false,
				Reactivity:   false,
			},
			Transformations: map[string]TransformRule{
				"rust": {
					TargetLibrary: "std",
					TargetPattern: "TcpStream",
					Template:      `let stream = TcpStream::connect("{{address}}:{{port}}")`,
					Imports:       []string{"use std::net::TcpStream"},
				},
				"go": {
					TargetLibrary: "net",
					TargetPattern: "Dial",
					Template:      `conn, err := net.Dial("tcp", "{{address}}:{{port}}")`,
					Imports:       []string{`import "net"`},
				},
				"python": {
					TargetLibrary: "socket",
					TargetPattern: "socket",
					Template:      "sock = socket.socket(socket.AF_INET, socket.SOCK_STREAM)",
					Imports:       []string{"import socket"},
				},
			},
		},
	}
}
