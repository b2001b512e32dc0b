package mailer

// Identificadores dos templates de e-mail transacional.
const (
	TemplateBoasVindas            = "boas-vindas"
	TemplateNovoAgendamentoMentor = "novo-agendamento-mentor"
	TemplateNovoAgendamentoAluno  = "novo-agendamento-mentorado"
	TemplateCancelamento          = "cancelamento-agendamento"
)

// Assuntos por template. O assunto também passa pelo renderizador, então
// pode carregar variáveis.
var assuntos = map[string]string{
	TemplateBoasVindas:            "Bem-vindo(a) à plataforma, {{nome}}!",
	TemplateNovoAgendamentoMentor: "Nova mentoria agendada com {{mentoradoNome}}",
	TemplateNovoAgendamentoAluno:  "Sua mentoria com {{mentorNome}} está confirmada",
	TemplateCancelamento:          "Mentoria de {{data}} cancelada",
}

// Corpos HTML dos templates. Mantidos no binário de propósito: são poucos,
// mudam junto com o código e assim o deploy é um artefato só.
var corpos = map[string]string{
	TemplateBoasVindas: `
<h2>Olá, {{nome}}!</h2>
<p>Sua conta foi criada com sucesso. Que bom ter você por aqui.</p>
{{#if mentor}}<p>Complete o seu cadastro de recebimentos para começar a vender cursos e mentorias.</p>{{/if}}
<p>Bons estudos!</p>`,

	TemplateNovoAgendamentoMentor: `
<h2>Olá, {{mentorNome}}!</h2>
<p>Você tem uma nova mentoria agendada:</p>
<ul>
  <li><strong>Mentorado:</strong> {{mentoradoNome}}</li>
  <li><strong>Data:</strong> {{data}}</li>
  <li><strong>Horário:</strong> {{hora}}</li>
</ul>
{{#if observacao}}<p><strong>Observação:</strong> {{observacao}}</p>{{/if}}`,

	TemplateNovoAgendamentoAluno: `
<h2>Olá, {{mentoradoNome}}!</h2>
<p>Sua mentoria com <strong>{{mentorNome}}</strong> foi confirmada:</p>
<ul>
  <li><strong>Data:</strong> {{data}}</li>
  <li><strong>Horário:</strong> {{hora}}</li>
</ul>
<p>Até lá!</p>`,

	TemplateCancelamento: `
<h2>Olá, {{nome}}!</h2>
<p>A mentoria marcada para <strong>{{data}}</strong> às <strong>{{hora}}</strong> foi cancelada.</p>
{{#if motivo}}<p><strong>Motivo:</strong> {{motivo}}</p>{{/if}}
<p>Você pode agendar um novo horário pela plataforma.</p>`,
}

// TemplateExiste informa se o identificador corresponde a um template
// conhecido. Usado pelas rotas de diagnóstico /api/test-email/{template}.
func TemplateExiste(id string) bool {
	_, ok := corpos[id]
	return ok
}
