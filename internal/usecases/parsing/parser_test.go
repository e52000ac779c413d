package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/biznexus-api/internal/domain"
)

func TestService_Parse(t *testing.T) {
	parser := NewService()

	t.Run("Texto sem blocos volta intacto", func(t *testing.T) {
		reply := parser.Parse("Your top seller this month was the Lavender Candle.")

		assert.Equal(t, "Your top seller this month was the Lavender Candle.", reply.DisplayText)
		assert.Nil(t, reply.Chart)
		assert.Nil(t, reply.Actions)
		assert.Nil(t, reply.Suggestions)
		assert.False(t, reply.HasSchedule)
	})

	t.Run("Bloco de sugestões é extraído e removido do texto", func(t *testing.T) {
		text := "Sales are up. ```json suggestions\n[\"Check Q3\",\"Review SKU A1\"]\n```"

		reply := parser.Parse(text)

		assert.Equal(t, "Sales are up.", reply.DisplayText)
		assert.Equal(t, []string{"Check Q3", "Review SKU A1"}, reply.Suggestions)
	})

	t.Run("Sugestões embrulhadas em objeto também são aceitas", func(t *testing.T) {
		text := "Ideas: ```json suggestions\n{\"suggestions\": [\"Bundle A with B\"]}\n```"

		reply := parser.Parse(text)

		assert.Equal(t, "Ideas:", reply.DisplayText)
		assert.Equal(t, []string{"Bundle A with B"}, reply.Suggestions)
	})

	t.Run("Bloco de ações exige array de label e type", func(t *testing.T) {
		text := "Next steps: ```json actions\n[{\"label\": \"Reorder now\", \"type\": \"reorder\"}]\n```"

		reply := parser.Parse(text)

		assert.Equal(t, "Next steps:", reply.DisplayText)
		require.Len(t, reply.Actions, 1)
		assert.Equal(t, "Reorder now", reply.Actions[0].Label)
		assert.Equal(t, "reorder", reply.Actions[0].Type)
	})

	t.Run("Bloco de gráfico com tag explícita é aceito", func(t *testing.T) {
		text := "Here is the trend. ```json chart\n{\"type\": \"bar\", \"title\": \"Monthly Sales\", \"data\": [1, 2, 3]}\n```"

		reply := parser.Parse(text)

		assert.Equal(t, "Here is the trend.", reply.DisplayText)
		require.NotNil(t, reply.Chart)
		assert.Equal(t, "bar", reply.Chart.Type)
		assert.Equal(t, "Monthly Sales", reply.Chart.Title)
	})

	t.Run("Bloco json sem tag também é tratado como gráfico", func(t *testing.T) {
		text := "```json\n{\"type\": \"line\", \"data\": [10]}\n```"

		reply := parser.Parse(text)

		assert.Empty(t, reply.DisplayText)
		require.NotNil(t, reply.Chart)
		assert.Equal(t, "line", reply.Chart.Type)
	})

	t.Run("Gráfico sem type ou sem data é rejeitado e fica no texto", func(t *testing.T) {
		text := "```json\n{\"title\": \"No type here\", \"data\": [1]}\n```"

		reply := parser.Parse(text)

		assert.Nil(t, reply.Chart)
		assert.Contains(t, reply.DisplayText, "No type here")
	})

	t.Run("Bloco de agenda só sinaliza presença", func(t *testing.T) {
		text := "Booked! ```json schedule\n{\"datetime\": \"2024-03-20T10:00:00Z\"}\n```"

		reply := parser.Parse(text)

		assert.Equal(t, "Booked!", reply.DisplayText)
		assert.True(t, reply.HasSchedule)
		assert.Nil(t, reply.Chart)
	})

	t.Run("Agenda tem precedência sobre o padrão genérico de gráfico", func(t *testing.T) {
		// O payload de agenda até parece um gráfico válido; a ordem de
		// extração garante que ele nunca chega ao padrão genérico
		text := "Done. ```json schedule\n{\"type\": \"meeting\", \"data\": [\"10am\"]}\n```"

		reply := parser.Parse(text)

		assert.True(t, reply.HasSchedule)
		assert.Nil(t, reply.Chart)
		assert.Equal(t, "Done.", reply.DisplayText)
	})

	t.Run("JSON malformado é tolerado e o bloco permanece no texto", func(t *testing.T) {
		text := "Oops ```json actions\n[{\"label\": \"Broken\"\n``` rest"

		reply := parser.Parse(text)

		assert.Nil(t, reply.Actions)
		assert.Contains(t, reply.DisplayText, "Broken")
		assert.Contains(t, reply.DisplayText, "rest")
	})

	t.Run("Apenas a primeira ocorrência de cada categoria é reconhecida", func(t *testing.T) {
		text := "A ```json suggestions\n[\"first\"]\n``` B ```json suggestions\n[\"second\"]\n``` C"

		reply := parser.Parse(text)

		assert.Equal(t, []string{"first"}, reply.Suggestions)
		assert.Contains(t, reply.DisplayText, "second")
	})

	t.Run("Múltiplas categorias no mesmo texto são todas extraídas", func(t *testing.T) {
		text := "Summary here. " +
			"```json suggestions\n[\"Try bundles\"]\n``` " +
			"```json actions\n[{\"label\": \"Launch promo\", \"type\": \"campaign\"}]\n``` " +
			"```json chart\n{\"type\": \"pie\", \"data\": [{\"name\": \"A1\", \"value\": 10}]}\n```"

		reply := parser.Parse(text)

		assert.Equal(t, "Summary here.", reply.DisplayText)
		assert.Equal(t, []string{"Try bundles"}, reply.Suggestions)
		require.Len(t, reply.Actions, 1)
		require.NotNil(t, reply.Chart)
		assert.Equal(t, "pie", reply.Chart.Type)
	})

	t.Run("Sugestões malformadas não são capturadas como gráfico", func(t *testing.T) {
		text := "```json suggestions\n[\"unterminated\n```"

		reply := parser.Parse(text)

		assert.Nil(t, reply.Suggestions)
		assert.Nil(t, reply.Chart)
		assert.Contains(t, reply.DisplayText, "unterminated")
	})
}

func TestService_Parse_EmptyInput(t *testing.T) {
	parser := NewService()

	reply := parser.Parse("")

	assert.Equal(t, domain.ParsedReply{DisplayText: ""}, reply)
}
