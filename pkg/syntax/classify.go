package syntax

// NodeSet is a set of grammar node type tags for one classification concern.
type NodeSet map[string]struct{}

// Contains reports whether the set holds the given node type.
func (s NodeSet) Contains(nodeType string) bool {
	_, ok := s[nodeType]

	return ok
}

func newNodeSet(types ...string) NodeSet {
	set := make(NodeSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}

	return set
}

// commonLanguage is the fallback key used when a language has no table entry.
const commonLanguage = "common"

// complexityNodes lists the node types that add one decision point per
// language. Binary-operator node types are counted only when their operator
// is a logical AND/OR, see OperatorChecked.
var complexityNodes = map[string]NodeSet{
	"python": newNodeSet(
		"if_statement", "for_statement", "while_statement", "elif_clause",
		"except_clause", "with_statement", "assert_statement",
		"match_statement", "case_clause", "boolean_operator",
	),
	"javascript": newNodeSet(
		"if_statement", "for_statement", "for_in_statement",
		"while_statement", "do_statement", "switch_statement",
		"catch_clause", "ternary_expression", "binary_expression",
	),
	"java": newNodeSet(
		"if_statement", "for_statement", "enhanced_for_statement",
		"while_statement", "do_statement", "switch_expression",
		"catch_clause", "ternary_expression", "binary_expression",
	),
	"cpp": newNodeSet(
		"if_statement", "for_statement", "for_range_loop",
		"while_statement", "do_statement", "switch_statement",
		"catch_clause", "conditional_expression", "binary_expression",
	),
	"c": newNodeSet(
		"if_statement", "for_statement", "while_statement", "do_statement",
		"switch_statement", "conditional_expression", "binary_expression",
	),
	"go": newNodeSet(
		"if_statement", "for_statement", "expression_switch_statement",
		"type_switch_statement", "select_statement", "binary_expression",
	),
	"ruby": newNodeSet(
		"if", "elsif", "unless", "while", "until", "for", "case", "when",
		"rescue", "conditional", "binary",
	),
	"rust": newNodeSet(
		"if_expression", "while_expression", "loop_expression",
		"for_expression", "match_expression", "match_arm",
		"binary_expression",
	),
	commonLanguage: newNodeSet(
		"if_statement", "for_statement", "while_statement",
		"switch_statement", "catch_clause",
	),
}

// nestingNodes lists the node types that open one nesting level.
var nestingNodes = map[string]NodeSet{
	"python": newNodeSet(
		"if_statement", "for_statement", "while_statement", "try_statement",
		"except_clause", "with_statement", "match_statement",
		"function_definition", "class_definition",
	),
	"javascript": newNodeSet(
		"if_statement", "for_statement", "for_in_statement",
		"while_statement", "do_statement", "switch_statement",
		"try_statement", "catch_clause", "function_declaration",
		"function_expression", "arrow_function", "method_definition",
		"class_declaration",
	),
	"java": newNodeSet(
		"if_statement", "for_statement", "enhanced_for_statement",
		"while_statement", "do_statement", "switch_expression",
		"try_statement", "catch_clause", "method_declaration",
		"constructor_declaration", "class_declaration",
	),
	"cpp": newNodeSet(
		"if_statement", "for_statement", "for_range_loop",
		"while_statement", "do_statement", "switch_statement",
		"try_statement", "catch_clause", "function_definition",
		"class_specifier",
	),
	"c": newNodeSet(
		"if_statement", "for_statement", "while_statement", "do_statement",
		"switch_statement", "function_definition",
	),
	"go": newNodeSet(
		"if_statement", "for_statement", "expression_switch_statement",
		"type_switch_statement", "select_statement", "function_declaration",
		"method_declaration", "func_literal",
	),
	"ruby": newNodeSet(
		"if", "unless", "while", "until", "for", "case", "begin", "method",
		"singleton_method", "class", "module", "block", "do_block",
	),
	"rust": newNodeSet(
		"if_expression", "while_expression", "loop_expression",
		"for_expression", "match_expression", "function_item",
		"closure_expression", "impl_item",
	),
	commonLanguage: newNodeSet(
		"if_statement", "for_statement", "while_statement", "do_statement",
		"switch_statement", "try_statement", "catch_clause",
		"function_definition", "class_definition",
	),
}

// functionNodes lists the function and method definition node types.
var functionNodes = map[string]NodeSet{
	"python": newNodeSet("function_definition"),
	"javascript": newNodeSet(
		"function_declaration", "function_expression", "arrow_function",
		"method_definition", "generator_function_declaration",
	),
	"java": newNodeSet("method_declaration", "constructor_declaration"),
	"cpp":  newNodeSet("function_definition"),
	"c":    newNodeSet("function_definition"),
	"go": newNodeSet(
		"function_declaration", "method_declaration", "func_literal",
	),
	"ruby": newNodeSet("method", "singleton_method"),
	"rust": newNodeSet("function_item", "closure_expression"),
	commonLanguage: newNodeSet(
		"function_definition", "function_declaration", "method_declaration",
		"method_definition",
	),
}

// parameterListNodes lists the node types holding a definition's parameters.
// Actual parameters are the named children of these nodes.
var parameterListNodes = map[string]NodeSet{
	"python":     newNodeSet("parameters"),
	"javascript": newNodeSet("formal_parameters"),
	"java":       newNodeSet("formal_parameters"),
	"cpp":        newNodeSet("parameter_list"),
	"c":          newNodeSet("parameter_list"),
	"go":         newNodeSet("parameter_list"),
	"ruby":       newNodeSet("method_parameters", "block_parameters"),
	"rust":       newNodeSet("parameters"),
	commonLanguage: newNodeSet(
		"parameters", "formal_parameters", "parameter_list",
	),
}

// callFields maps call-expression node types to the grammar field naming the
// invoked function.
var callFields = map[string]map[string]string{
	"python":     {"call": "function"},
	"javascript": {"call_expression": "function"},
	"java":       {"method_invocation": "name"},
	"cpp":        {"call_expression": "function"},
	"c":          {"call_expression": "function"},
	"go":         {"call_expression": "function"},
	"ruby":       {"call": "method"},
	"rust":       {"call_expression": "function"},
	commonLanguage: {
		"call":            "function",
		"call_expression": "function",
	},
}

// assignmentFields maps assignment-like node types to the grammar field
// naming the binding target.
var assignmentFields = map[string]map[string]string{
	"python": {"assignment": "left"},
	"javascript": {
		"variable_declarator":   "name",
		"assignment_expression": "left",
	},
	"java": {
		"variable_declarator":   "name",
		"assignment_expression": "left",
	},
	"cpp": {
		"assignment_expression": "left",
		"init_declarator":       "declarator",
	},
	"c": {
		"assignment_expression": "left",
		"init_declarator":       "declarator",
	},
	"go": {
		"short_var_declaration": "left",
		"var_spec":              "name",
	},
	"ruby": {"assignment": "left"},
	"rust": {
		"let_declaration":       "pattern",
		"assignment_expression": "left",
	},
	commonLanguage: {
		"assignment":          "left",
		"variable_declarator": "name",
	},
}

// lineCommentTokens maps languages to their single-line comment prefix.
var lineCommentTokens = map[string]string{
	"python":       "#",
	"javascript":   "//",
	"java":         "//",
	"cpp":          "//",
	"c":            "//",
	"go":           "//",
	"ruby":         "#",
	"rust":         "//",
	commonLanguage: "#",
}

// operatorCheckedNodes are complexity node types that count only when their
// operator field is a logical AND/OR. Everything else in a complexity table
// counts unconditionally.
var operatorCheckedNodes = newNodeSet("binary_expression", "binary")

// logicalOperators are the textual operator spellings that add a decision
// point in a binary expression.
var logicalOperators = newNodeSet("&&", "||", "and", "or")

func lookupSet(tables map[string]NodeSet, language string) NodeSet {
	if set, ok := tables[NormalizeLanguage(language)]; ok {
		return set
	}

	return tables[commonLanguage]
}

func lookupFields(tables map[string]map[string]string, language string) map[string]string {
	if fields, ok := tables[NormalizeLanguage(language)]; ok {
		return fields
	}

	return tables[commonLanguage]
}

// ComplexityNodes returns the decision-point node types for a language,
// falling back to the generic table for unrecognized languages.
func ComplexityNodes(language string) NodeSet {
	return lookupSet(complexityNodes, language)
}

// NestingNodes returns the nesting-level node types for a language.
func NestingNodes(language string) NodeSet {
	return lookupSet(nestingNodes, language)
}

// FunctionNodes returns the function-definition node types for a language.
func FunctionNodes(language string) NodeSet {
	return lookupSet(functionNodes, language)
}

// ParameterListNodes returns the parameter-list node types for a language.
func ParameterListNodes(language string) NodeSet {
	return lookupSet(parameterListNodes, language)
}

// CallFields returns the call node types for a language mapped to the field
// that names the invoked function.
func CallFields(language string) map[string]string {
	return lookupFields(callFields, language)
}

// AssignmentFields returns the assignment node types for a language mapped to
// the field that names the binding target.
func AssignmentFields(language string) map[string]string {
	return lookupFields(assignmentFields, language)
}

// LineCommentToken returns the single-line comment prefix for a language.
func LineCommentToken(language string) string {
	if token, ok := lineCommentTokens[NormalizeLanguage(language)]; ok {
		return token
	}

	return lineCommentTokens[commonLanguage]
}

// OperatorChecked reports whether a complexity node type needs its operator
// inspected before counting.
func OperatorChecked(nodeType string) bool {
	return operatorCheckedNodes.Contains(nodeType)
}

// IsLogicalOperator reports whether an operator spelling is a logical AND/OR.
func IsLogicalOperator(op string) bool {
	return logicalOperators.Contains(op)
}
