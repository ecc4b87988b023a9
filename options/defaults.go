package options

// Defaults returns every option name this repository's components read,
// at its uncrustify-compatible default value (sourced from
// original_source/documentation where spec.md itself is silent).
// Values are stored as their string spelling since Provider implementations
// are free to parse them however they like.
func Defaults() map[string]string {
	return map[string]string{
		// global
		"code_width":        "80",
		"indent_columns":     "4",
		"indent_continue":    "0",
		"indent_with_tabs":   "0",
		"output_tab_size":    "8",
		"newlines":           "auto",

		// alignment spans/thresholds/gaps
		"align_var_def_span":          "0",
		"align_var_def_thresh":        "0",
		"align_var_def_gap":           "1",
		"align_var_def_star_style":    "0", // 0=ignore 1=include 2=dangle
		"align_var_def_amp_style":     "0",
		"align_assign_span":           "0",
		"align_assign_thresh":         "0",
		"align_enum_equ_span":         "0",
		"align_typedef_span":          "0",
		"align_typedef_gap":           "1",
		"align_func_params":           "0",
		"align_func_params_span":      "0",
		"align_func_params_thresh":    "0",
		"align_func_proto_span":       "0",
		"align_same_func_call_params": "0",
		"align_braced_init_list_span": "0",
		"align_right_cmt_span":        "3",
		"align_right_cmt_gap":         "1",
		"align_right_cmt_at_col":      "0",
		"align_left_shift":            "1",
		"align_oc_msg_colon_span":     "0",
		"align_eigen_comma_init":      "0",
		"align_asm_colon":             "0",

		// newline/brace normalizer
		"nl_if_brace":          "ignore",
		"nl_else_brace":        "ignore",
		"nl_brace_else":        "ignore",
		"nl_for_brace":         "ignore",
		"nl_while_brace":       "ignore",
		"nl_do_brace":          "ignore",
		"nl_brace_while":       "ignore",
		"nl_switch_brace":      "ignore",
		"nl_try_brace":         "ignore",
		"nl_catch_brace":       "ignore",
		"nl_brace_catch":       "ignore",
		"nl_fcn_brace":         "ignore",
		"nl_class_brace":       "ignore",
		"nl_namespace_brace":   "ignore",
		"nl_enum_brace":        "ignore",
		"nl_struct_brace":      "ignore",
		"nl_union_brace":       "ignore",
		"nl_max":               "0",
		"nl_before_block_cmt":  "0",
		"nl_after_func_body":   "0",

		"mod_full_brace_if":       "ignore",
		"mod_full_brace_for":      "ignore",
		"mod_full_brace_while":    "ignore",
		"mod_full_brace_do":       "ignore",
		"mod_infinite_loop":       "", // "" (or anything but "for"/"while") = leave as-is
		"mod_enum_last_comma":     "ignore",

		// width splitter
		"indent_continue_neg_for_func_paren": "0",
		"ls_code_width":                      "0",
		"ls_func_split_full":                 "0",
		"pos_arith":                          "trail",
		"pos_assign":                         "trail",
		"pos_bool":                           "trail",
		"pos_compare":                        "trail",
		"pos_conditional":                    "trail",
		"pos_shift":                          "trail",

		// preprocessor
		"pp_indent":       "ignore",
		"pp_indent_count": "1",
		"pp_define_at_level": "0",

		// comment/indent position
		"indent_col1_comment": "0",
		"indent_access_spec":  "1",
		"indent_namespace":    "1",
		"indent_label":        "1",
	}
}
