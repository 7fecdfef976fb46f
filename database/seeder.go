package database

import (
	"fmt"

	"github.com/quivia/quivia-be/internal/entity"
	"gorm.io/gorm"
)

type seedQuestion struct {
	ID         string
	Difficulty string
	Topic      string
	Question   string
	Options    [4]string
	Answer     string
}

// QuestionBankData - static Excel skills bank loaded on first boot.
var QuestionBankData = []seedQuestion{
	// ==================== EASY ====================
	{ID: "e-form-1", Difficulty: "easy", Topic: "Formulas", Question: "Which symbol must every Excel formula start with?", Options: [4]string{"=", "+", "#", "@"}, Answer: "="},
	{ID: "e-form-2", Difficulty: "easy", Topic: "Formulas", Question: "What does the formula =A1+B1 do?", Options: [4]string{"Adds the values in cells A1 and B1", "Multiplies A1 by B1", "Concatenates A1 and B1 as text", "Counts the cells A1 and B1"}, Answer: "Adds the values in cells A1 and B1"},
	{ID: "e-func-1", Difficulty: "easy", Topic: "Functions", Question: "Which function adds up a range of numbers?", Options: [4]string{"SUM", "COUNT", "MAX", "ADD"}, Answer: "SUM"},
	{ID: "e-func-2", Difficulty: "easy", Topic: "Functions", Question: "Which function returns the arithmetic mean of a range?", Options: [4]string{"AVERAGE", "MEAN", "MEDIAN", "SUMPRODUCT"}, Answer: "AVERAGE"},
	{ID: "e-func-3", Difficulty: "easy", Topic: "Functions", Question: "Which function counts how many cells in a range contain numbers?", Options: [4]string{"COUNT", "COUNTA", "SUM", "LEN"}, Answer: "COUNT"},
	{ID: "e-chart-1", Difficulty: "easy", Topic: "Charts", Question: "Which chart type is best for showing parts of a whole?", Options: [4]string{"Pie chart", "Line chart", "Scatter plot", "Histogram"}, Answer: "Pie chart"},
	{ID: "e-chart-2", Difficulty: "easy", Topic: "Charts", Question: "Which chart type is best for showing a trend over time?", Options: [4]string{"Line chart", "Pie chart", "Doughnut chart", "Treemap"}, Answer: "Line chart"},
	{ID: "e-short-1", Difficulty: "easy", Topic: "Shortcuts", Question: "Which keyboard shortcut copies the selected cells?", Options: [4]string{"Ctrl+C", "Ctrl+V", "Ctrl+X", "Ctrl+Z"}, Answer: "Ctrl+C"},
	{ID: "e-short-2", Difficulty: "easy", Topic: "Shortcuts", Question: "Which keyboard shortcut undoes the last action?", Options: [4]string{"Ctrl+Z", "Ctrl+Y", "Ctrl+U", "Ctrl+N"}, Answer: "Ctrl+Z"},
	{ID: "e-short-3", Difficulty: "easy", Topic: "Shortcuts", Question: "Which shortcut saves the current workbook?", Options: [4]string{"Ctrl+S", "Ctrl+P", "Ctrl+W", "Ctrl+O"}, Answer: "Ctrl+S"},
	{ID: "e-gen-1", Difficulty: "easy", Topic: "General", Question: "What is the intersection of a row and a column called?", Options: [4]string{"Cell", "Range", "Field", "Record"}, Answer: "Cell"},
	{ID: "e-gen-2", Difficulty: "easy", Topic: "General", Question: "What is the default file extension for a modern Excel workbook?", Options: [4]string{".xlsx", ".xls", ".csv", ".xlsm"}, Answer: ".xlsx"},
	{ID: "e-data-1", Difficulty: "easy", Topic: "Data Analysis", Question: "Which feature lets you show only rows that match a condition?", Options: [4]string{"Filter", "Merge", "Freeze Panes", "Spell Check"}, Answer: "Filter"},
	{ID: "e-data-2", Difficulty: "easy", Topic: "Data Analysis", Question: "Which feature arranges rows in ascending or descending order?", Options: [4]string{"Sort", "Wrap Text", "Format Painter", "Group"}, Answer: "Sort"},
	// ==================== MEDIUM ====================
	{ID: "m-form-1", Difficulty: "medium", Topic: "Formulas", Question: "What does the $ sign do in the reference $A$1?", Options: [4]string{"Makes the reference absolute so it does not change when copied", "Formats the cell as currency", "Marks the cell as protected", "Converts the value to text"}, Answer: "Makes the reference absolute so it does not change when copied"},
	{ID: "m-form-2", Difficulty: "medium", Topic: "Formulas", Question: "Which error appears when a formula divides by zero?", Options: [4]string{"#DIV/0!", "#REF!", "#NAME?", "#VALUE!"}, Answer: "#DIV/0!"},
	{ID: "m-form-3", Difficulty: "medium", Topic: "Formulas", Question: "What does the #REF! error indicate?", Options: [4]string{"A formula refers to a cell that no longer exists", "The formula name is misspelled", "A number is too large to display", "The cell contains circular logic"}, Answer: "A formula refers to a cell that no longer exists"},
	{ID: "m-func-1", Difficulty: "medium", Topic: "Functions", Question: "Which function looks up a value in the first column of a table and returns a value from another column?", Options: [4]string{"VLOOKUP", "HLOOKUP", "INDEX", "OFFSET"}, Answer: "VLOOKUP"},
	{ID: "m-func-2", Difficulty: "medium", Topic: "Functions", Question: "What does =IF(A1>10, \"High\", \"Low\") return when A1 is 5?", Options: [4]string{"Low", "High", "TRUE", "An error"}, Answer: "Low"},
	{ID: "m-func-3", Difficulty: "medium", Topic: "Functions", Question: "Which function counts cells in a range that meet a single condition?", Options: [4]string{"COUNTIF", "SUMIF", "COUNT", "IFCOUNT"}, Answer: "COUNTIF"},
	{ID: "m-func-4", Difficulty: "medium", Topic: "Functions", Question: "Which function joins text from multiple cells into one?", Options: [4]string{"CONCAT", "SPLIT", "TEXTJOINT", "MERGE"}, Answer: "CONCAT"},
	{ID: "m-chart-1", Difficulty: "medium", Topic: "Charts", Question: "What is a secondary axis used for?", Options: [4]string{"Plotting series with very different value ranges on one chart", "Adding a chart title", "Rotating the chart 90 degrees", "Displaying gridlines"}, Answer: "Plotting series with very different value ranges on one chart"},
	{ID: "m-short-1", Difficulty: "medium", Topic: "Shortcuts", Question: "Which shortcut jumps to the last used cell of the worksheet?", Options: [4]string{"Ctrl+End", "Ctrl+Home", "Alt+End", "Shift+End"}, Answer: "Ctrl+End"},
	{ID: "m-short-2", Difficulty: "medium", Topic: "Shortcuts", Question: "Which shortcut inserts the current date into a cell?", Options: [4]string{"Ctrl+;", "Ctrl+:", "Ctrl+D", "Alt+D"}, Answer: "Ctrl+;"},
	{ID: "m-data-1", Difficulty: "medium", Topic: "Data Analysis", Question: "Which tool summarizes large datasets by dragging fields into rows, columns, and values?", Options: [4]string{"PivotTable", "Scenario Manager", "Goal Seek", "Data Validation"}, Answer: "PivotTable"},
	{ID: "m-data-2", Difficulty: "medium", Topic: "Data Analysis", Question: "What does conditional formatting do?", Options: [4]string{"Changes a cell's appearance based on its value", "Validates data entry against a list", "Protects cells from editing", "Converts formulas to values"}, Answer: "Changes a cell's appearance based on its value"},
	{ID: "m-pivot-1", Difficulty: "medium", Topic: "Pivot Tables", Question: "What must you do after the source data of a PivotTable changes?", Options: [4]string{"Refresh the PivotTable", "Recreate the PivotTable from scratch", "Re-sort the source data", "Nothing, it updates automatically"}, Answer: "Refresh the PivotTable"},
	{ID: "m-gen-1", Difficulty: "medium", Topic: "General", Question: "What does Freeze Panes do?", Options: [4]string{"Keeps selected rows or columns visible while scrolling", "Locks cells against editing", "Hides the selected rows", "Splits the workbook into two files"}, Answer: "Keeps selected rows or columns visible while scrolling"},
	// ==================== HARD ====================
	{ID: "h-form-1", Difficulty: "hard", Topic: "Formulas", Question: "Which combination replaces VLOOKUP and can look left of the lookup column?", Options: [4]string{"INDEX and MATCH", "OFFSET and COUNT", "CHOOSE and RANK", "INDIRECT and ROW"}, Answer: "INDEX and MATCH"},
	{ID: "h-form-2", Difficulty: "hard", Topic: "Formulas", Question: "What is a circular reference?", Options: [4]string{"A formula that refers back to its own cell, directly or through a chain", "A reference that wraps from the last row to the first", "A named range used in two sheets", "A 3-D reference across workbooks"}, Answer: "A formula that refers back to its own cell, directly or through a chain"},
	{ID: "h-func-1", Difficulty: "hard", Topic: "Functions", Question: "What does =SUMPRODUCT((A1:A10>5)*(B1:B10)) compute?", Options: [4]string{"The sum of B values where the matching A value exceeds 5", "The product of all values above 5", "The count of pairs where both exceed 5", "An array of TRUE/FALSE values"}, Answer: "The sum of B values where the matching A value exceeds 5"},
	{ID: "h-func-2", Difficulty: "hard", Topic: "Functions", Question: "Which dynamic array function returns unique values from a range?", Options: [4]string{"UNIQUE", "DISTINCT", "DEDUPE", "SINGLE"}, Answer: "UNIQUE"},
	{ID: "h-vba-1", Difficulty: "hard", Topic: "VBA", Question: "Which shortcut opens the Visual Basic Editor?", Options: [4]string{"Alt+F11", "Ctrl+F11", "Alt+F8", "Ctrl+Shift+V"}, Answer: "Alt+F11"},
	{ID: "h-vba-2", Difficulty: "hard", Topic: "VBA", Question: "In VBA, what is the difference between a Sub and a Function?", Options: [4]string{"A Function returns a value, a Sub does not", "A Sub runs faster than a Function", "A Function cannot take arguments", "A Sub can only be called from a worksheet"}, Answer: "A Function returns a value, a Sub does not"},
	{ID: "h-vba-3", Difficulty: "hard", Topic: "VBA", Question: "Which file extension is required to save a workbook containing macros?", Options: [4]string{".xlsm", ".xlsx", ".xltx", ".xml"}, Answer: ".xlsm"},
	{ID: "h-data-1", Difficulty: "hard", Topic: "Data Analysis", Question: "Which tool finds the input value needed for a formula to hit a target result?", Options: [4]string{"Goal Seek", "Solver Table", "Flash Fill", "Quick Analysis"}, Answer: "Goal Seek"},
	{ID: "h-data-2", Difficulty: "hard", Topic: "Data Analysis", Question: "What is Power Query primarily used for?", Options: [4]string{"Importing, cleaning, and transforming data before analysis", "Rendering 3-D charts", "Writing database triggers", "Compressing workbook files"}, Answer: "Importing, cleaning, and transforming data before analysis"},
	{ID: "h-pivot-1", Difficulty: "hard", Topic: "Pivot Tables", Question: "What does a calculated field in a PivotTable do?", Options: [4]string{"Derives a new value from other fields using a formula", "Hides rows below a threshold", "Links the pivot to an external database", "Sorts values by color"}, Answer: "Derives a new value from other fields using a formula"},
	{ID: "h-chart-1", Difficulty: "hard", Topic: "Charts", Question: "Which chart type shows the cumulative effect of sequential positive and negative values?", Options: [4]string{"Waterfall chart", "Radar chart", "Bubble chart", "Box and whisker"}, Answer: "Waterfall chart"},
	{ID: "h-gen-1", Difficulty: "hard", Topic: "General", Question: "What is the maximum number of rows in a modern Excel worksheet?", Options: [4]string{"1,048,576", "65,536", "500,000", "16,384"}, Answer: "1,048,576"},
}

// SeedQuestionBank loads the static bank into quiz_questions on first boot.
func SeedQuestionBank(db *gorm.DB) error {
	// Check if already seeded
	var count int64
	db.Model(&entity.QuizQuestion{}).Count(&count)
	if count > 0 {
		fmt.Println("Question bank already seeded, skipping...")
		return nil
	}

	fmt.Println("Seeding question bank...")

	for _, q := range QuestionBankData {
		row := entity.QuizQuestion{
			QuestionID:  q.ID,
			Question:    q.Question,
			OptionA:     q.Options[0],
			OptionB:     q.Options[1],
			OptionC:     q.Options[2],
			OptionD:     q.Options[3],
			Answer:      q.Answer,
			Difficulty:  q.Difficulty,
			Topic:       q.Topic,
			GeneratedBy: "seed",
		}

		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed question %s: %w", q.ID, err)
		}
	}

	fmt.Printf("Successfully seeded %d questions\n", len(QuestionBankData))
	return nil
}
